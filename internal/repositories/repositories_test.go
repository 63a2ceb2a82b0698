package repositories_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"melodia/internal/apperrors"
	"melodia/internal/models"
	"melodia/internal/repositories"
)

// setupDB opens an isolated in-memory SQLite database with foreign keys
// enforced and the full schema migrated.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Artist{},
		&models.Album{},
		&models.Song{},
	))
	return db
}

func seedArtist(t *testing.T, repo repositories.ArtistRepository, name string) *models.Artist {
	t.Helper()
	artist := &models.Artist{Name: name, Genre: "rock", Country: "NO"}
	require.NoError(t, repo.Create(artist))
	return artist
}

func TestArtistRepositoryCRUD(t *testing.T) {
	repo := repositories.NewGORMArtistRepository(setupDB(t))

	created := seedArtist(t, repo, "Kraftwerk")
	assert.NotZero(t, created.ID)

	// Create assigns a fresh unique id per record.
	second := seedArtist(t, repo, "Neu!")
	assert.NotEqual(t, created.ID, second.ID)

	fetched, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Genre, fetched.Genre)
	assert.Equal(t, created.Country, fetched.Country)

	// Partial update touches only the supplied columns.
	updated, err := repo.Update(created.ID, map[string]any{"name": "Kraftwerk 2"})
	assert.NoError(t, err)
	assert.Equal(t, "Kraftwerk 2", updated.Name)
	assert.Equal(t, "rock", updated.Genre)
	assert.Equal(t, "NO", updated.Country)

	// No-op update still returns the record for an existing id.
	unchanged, err := repo.Update(created.ID, map[string]any{})
	assert.NoError(t, err)
	assert.Equal(t, *updated, *unchanged)

	// And not-found for a missing one.
	_, err = repo.Update(9999, map[string]any{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.Update(9999, map[string]any{"name": "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Delete is physical; the second attempt reports not-found.
	assert.NoError(t, repo.Delete(created.ID))
	assert.ErrorIs(t, repo.Delete(created.ID), apperrors.ErrNotFound)
	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestArtistRepositoryListPagination(t *testing.T) {
	repo := repositories.NewGORMArtistRepository(setupDB(t))

	var ids []uint
	for i := 0; i < 5; i++ {
		artist := seedArtist(t, repo, fmt.Sprintf("artist-%d", i))
		ids = append(ids, artist.ID)
	}

	page, err := repo.List(2, 0)
	assert.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[0], page[0].ID)
	assert.Equal(t, ids[1], page[1].ID)

	page, err = repo.List(2, 2)
	assert.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID)

	// Repeated calls with the same arguments return the same sequence.
	again, err := repo.List(2, 2)
	assert.NoError(t, err)
	assert.Equal(t, page, again)

	// Paging past the end is an empty result, not an error.
	empty, err := repo.List(10, 100)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestForeignKeyIntegrity(t *testing.T) {
	db := setupDB(t)
	artistRepo := repositories.NewGORMArtistRepository(db)
	albumRepo := repositories.NewGORMAlbumRepository(db)
	songRepo := repositories.NewGORMSongRepository(db)

	// Dangling references are rejected by the store, not by a pre-check.
	err := albumRepo.Create(&models.Album{Title: "Orphan", ArtistID: 9999})
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)

	artist := seedArtist(t, artistRepo, "Can")
	album := &models.Album{Title: "Tago Mago", ArtistID: artist.ID}
	assert.NoError(t, albumRepo.Create(album))

	err = songRepo.Create(&models.Song{Title: "Halleluhwah", Duration: 1117, AlbumID: 9999, ArtistID: artist.ID})
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)

	song := &models.Song{Title: "Halleluhwah", Duration: 1117, AlbumID: album.ID, ArtistID: artist.ID}
	assert.NoError(t, songRepo.Create(song))

	// Repointing an album at a missing artist fails the same way.
	_, err = albumRepo.Update(album.ID, map[string]any{"artist_id": 9999})
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)

	// Foreign keys are RESTRICT: the artist cannot go while dependents exist.
	assert.ErrorIs(t, artistRepo.Delete(artist.ID), apperrors.ErrIntegrity)

	assert.NoError(t, songRepo.Delete(song.ID))
	assert.NoError(t, albumRepo.Delete(album.ID))
	assert.NoError(t, artistRepo.Delete(artist.ID))
}

func TestRoleRepositoryPermissions(t *testing.T) {
	repo := repositories.NewGORMRoleRepository(setupDB(t))

	role := &models.Role{Name: "admin", Permissions: models.JSONMap{"catalog": "write"}}
	require.NoError(t, repo.Create(role))

	fetched, err := repo.GetByID(role.ID)
	assert.NoError(t, err)
	assert.Equal(t, "admin", fetched.Name)
	assert.Equal(t, models.JSONMap{"catalog": "write"}, fetched.Permissions)

	// Updating only the name leaves the permission set intact.
	updated, err := repo.Update(role.ID, map[string]any{"name": "root"})
	assert.NoError(t, err)
	assert.Equal(t, "root", updated.Name)
	assert.Equal(t, models.JSONMap{"catalog": "write"}, updated.Permissions)

	// And the other way around.
	updated, err = repo.Update(role.ID, map[string]any{"permissions": models.JSONMap{}})
	assert.NoError(t, err)
	assert.Equal(t, "root", updated.Name)
	assert.Equal(t, models.JSONMap{}, updated.Permissions)
}

func TestUserRepository(t *testing.T) {
	db := setupDB(t)
	roleRepo := repositories.NewGORMRoleRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	role := &models.Role{Name: "listener", Permissions: models.JSONMap{}}
	require.NoError(t, roleRepo.Create(role))

	user := &models.User{
		Email:          "ada@example.com",
		Username:       "ada",
		RoleID:         &role.ID,
		HashedPassword: "$2a$10$notarealhash",
		IsActive:       true,
	}
	require.NoError(t, userRepo.Create(user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.RegisteredAt.IsZero(), "registered_at should be set at creation")

	byEmail, err := userRepo.GetByEmail("ada@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byName, err := userRepo.GetByUsername("ada")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = userRepo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// registered_at survives partial updates untouched.
	updated, err := userRepo.Update(user.ID, map[string]any{"is_active": false})
	assert.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, user.RegisteredAt.Unix(), updated.RegisteredAt.Unix())
	assert.Equal(t, user.Email, updated.Email)

	// A user pointing at a missing role is rejected by the store.
	err = userRepo.Create(&models.User{
		Email:          "ghost@example.com",
		Username:       "ghost",
		RoleID:         ptr(uint(9999)),
		HashedPassword: "$2a$10$notarealhash",
	})
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)
}

func ptr[T any](v T) *T { return &v }
