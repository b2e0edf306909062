package main

const herodexBanner = `
  _    _                    _
 | |  | |                  | |
 | |__| | ___ _ __ ___   __| | _____  __
 |  __  |/ _ \ '__/ _ \ / _` + "`" + ` |/ _ \ \/ /
 | |  | |  __/ | | (_) | (_| |  __/>  <
 |_|  |_|\___|_|  \___/ \__,_|\___/_/\_\

`
