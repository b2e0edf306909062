package hero

import (
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/totegamma/herodex/internal/testutil"
	"github.com/totegamma/herodex/x/core"
)

var ctx = context.Background()

func intptr(i int) *int {
	return &i
}

func strptr(s string) *string {
	return &s
}

func TestRepository(t *testing.T) {

	log.Println("Test Start")

	testutil.SetupMockTraceProvider()

	var cleanup_db func()
	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	var cleanup_mc func()
	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	repo := NewRepository(db, mc)

	// :: Heroを作成 ::
	hero := Hero{
		Name:       "Deadpond",
		SecretName: "Dive Wilson",
	}

	created, err := repo.Create(ctx, hero)
	if assert.NoError(t, err) {
		assert.False(t, created.ID.IsZero())
		assert.Equal(t, created.Name, hero.Name)
		assert.Equal(t, created.SecretName, hero.SecretName)
		assert.Nil(t, created.Age)
	}

	created2, err := repo.Create(ctx, Hero{
		Name:       "Rusty-Man",
		SecretName: "Tommy Sharp",
		Age:        intptr(48),
	})
	if assert.NoError(t, err) {
		assert.False(t, created2.ID.IsZero())
		assert.NotEqual(t, created.ID, created2.ID)
		if assert.NotNil(t, created2.Age) {
			assert.Equal(t, 48, *created2.Age)
		}
	}

	// :: 一覧を取得 ::
	heroes, err := repo.List(ctx, 0, 100)
	if assert.NoError(t, err) {
		assert.Len(t, heroes, 2)
	}

	heroes, err = repo.List(ctx, 1, 100)
	if assert.NoError(t, err) {
		assert.Len(t, heroes, 1)
	}

	heroes, err = repo.List(ctx, 0, 1)
	if assert.NoError(t, err) {
		assert.Len(t, heroes, 1)
	}

	// :: IDで取得 ::
	fetched, err := repo.Get(ctx, created.ID.Hex())
	if assert.NoError(t, err) {
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.Name, fetched.Name)
	}

	_, err = repo.Get(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, core.ErrInvalidID)

	_, err = repo.Get(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, core.ErrHeroNotFound)

	// :: 部分更新 ::
	updated, err := repo.Update(ctx, created2.ID.Hex(), Update{
		Name: strptr("Rusty-Man the Second"),
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "Rusty-Man the Second", updated.Name)
		assert.Equal(t, created2.SecretName, updated.SecretName)
		if assert.NotNil(t, updated.Age) {
			assert.Equal(t, 48, *updated.Age)
		}
	}

	_, err = repo.Update(ctx, primitive.NewObjectID().Hex(), Update{Name: strptr("nobody")})
	assert.ErrorIs(t, err, core.ErrHeroNotFound)

	_, err = repo.Update(ctx, "not-a-hex-id", Update{Name: strptr("nobody")})
	assert.ErrorIs(t, err, core.ErrInvalidID)

	// :: 総数を取得 ::
	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(2), count)
	}

	// :: 削除 ::
	deleted, err := repo.Delete(ctx, created.ID.Hex())
	if assert.NoError(t, err) {
		assert.Equal(t, created.ID, deleted.ID)
	}

	_, err = repo.Get(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, core.ErrHeroNotFound)

	_, err = repo.Delete(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, core.ErrHeroNotFound)

	count, err = repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}
}
