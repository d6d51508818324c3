package database

import (
	"context"
	"testing"
	"testing/fstest"

	"agora/internal/config"
	"agora/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 15,
	}

	require.NoError(t, configurePool(db, cfg))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)
}

func TestConfigurePool_Defaults(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, configurePool(db, &config.Config{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 25, sqlDB.Stats().MaxOpenConnections)
}

func TestSchemaPolicy(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		wantSQL  bool
		wantAuto bool
		wantErr  bool
	}{
		{name: "hybrid development", cfg: config.Config{Env: "development", DBDriver: config.DriverPostgres}, wantSQL: true, wantAuto: true},
		{name: "hybrid production", cfg: config.Config{Env: "production", DBDriver: config.DriverPostgres, DBSchemaMode: "hybrid"}, wantSQL: true},
		{name: "sql only", cfg: config.Config{Env: "development", DBDriver: config.DriverPostgres, DBSchemaMode: "sql"}, wantSQL: true},
		{name: "auto development", cfg: config.Config{Env: "development", DBDriver: config.DriverPostgres, DBSchemaMode: "auto"}, wantAuto: true},
		{name: "auto production refused", cfg: config.Config{Env: "production", DBDriver: config.DriverPostgres, DBSchemaMode: "auto"}, wantErr: true},
		{name: "auto production allowed", cfg: config.Config{Env: "production", DBDriver: config.DriverPostgres, DBSchemaMode: "auto", DBAutoMigrateAllowDestructive: true}, wantAuto: true},
		{name: "sqlite always auto", cfg: config.Config{Env: "test", DBDriver: config.DriverSQLite, DBSchemaMode: "sql"}, wantAuto: true},
		{name: "unknown mode", cfg: config.Config{Env: "development", DBDriver: config.DriverPostgres, DBSchemaMode: "yolo"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runSQL, runAuto, err := schemaPolicy(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, runSQL)
			assert.Equal(t, tt.wantAuto, runAuto)
		})
	}
}

func TestPersistentModels_ParentsFirst(t *testing.T) {
	list := PersistentModels()
	require.Len(t, list, 4)
	_, ok := list[0].(*models.User)
	assert.True(t, ok, "users must migrate before posts and comments")
	_, ok = list[3].(*models.Upvote)
	assert.True(t, ok)
}

func TestEmbeddedMigrationsRegistered(t *testing.T) {
	all := GetMigrations()
	require.NotEmpty(t, all)
	assert.Equal(t, 1, all[0].Version)
	assert.Equal(t, "forum_schema", all[0].Name)
	assert.Contains(t, all[0].UpScript, "CREATE TABLE IF NOT EXISTS upvotes")
	assert.Contains(t, all[0].UpScript, "fk_comments_replies")
	assert.NotContains(t, all[0].UpScript, "fk_comments_user")
	assert.NotEmpty(t, all[0].DownScript)

	m := GetMigrationByVersion(1)
	require.NotNil(t, m)
	assert.Equal(t, "000001_forum_schema", m.String())
	assert.Nil(t, GetMigrationByVersion(999))
}

func TestAutoMigrate_CommentAuthorNotEnforced(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, AutoMigrate(db))

	author := &models.User{ClerkUserID: "user_fk", Name: "Ann", Email: "ann@x.com"}
	require.NoError(t, db.Create(author).Error)
	post := &models.Post{Title: "t", Body: "b", AuthorID: author.ID}
	require.NoError(t, db.Omit("Author").Create(post).Error)

	orphan := &models.Comment{PostID: post.ID, UserID: uuid.New(), Text: "hi"}
	require.NoError(t, db.Omit("User", "Replies").Create(orphan).Error)

	missing := uuid.New()
	reply := &models.Comment{PostID: post.ID, UserID: author.ID, ParentCommentID: &missing, Text: "re"}
	assert.Error(t, db.Omit("User", "Replies").Create(reply).Error)
}

func TestLoadMigrations_OrdersAndSkipsBadNames(t *testing.T) {
	fsys := fstest.MapFS{
		"m/000002_second.up.sql":   {Data: []byte("SELECT 2;")},
		"m/000002_second.down.sql": {Data: []byte("SELECT -2;")},
		"m/000001_first.up.sql":    {Data: []byte("SELECT 1;")},
		"m/000001_first.down.sql":  {Data: []byte("SELECT -1;")},
		"m/abc_bad.up.sql":         {Data: []byte("SELECT 0;")},
		"m/README.md":              {Data: []byte("notes")},
	}

	loaded, err := LoadMigrations(fsys, "m")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 1, loaded[0].Version)
	assert.Equal(t, "second", loaded[1].Name)
	assert.Equal(t, "SELECT -2;", loaded[1].DownScript)
}

func TestLoadMigrations_MissingDownScript(t *testing.T) {
	fsys := fstest.MapFS{
		"m/000001_first.up.sql": {Data: []byte("SELECT 1;")},
	}

	_, err := LoadMigrations(fsys, "m")
	assert.Error(t, err)
}

func TestValidateAppliedVersions(t *testing.T) {
	registered := []Migration{{Version: 1}, {Version: 2}}

	assert.NoError(t, validateAppliedVersions(nil, registered))
	assert.NoError(t, validateAppliedVersions([]int{1, 2}, registered))

	err := validateAppliedVersions([]int{1, 7, 3}, registered)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "000003, 000007")
}

func TestRunMigrations_AppliesOnce(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	registered := []Migration{{
		Version:    1,
		Name:       "widgets",
		UpScript:   "CREATE TABLE widgets (id INTEGER PRIMARY KEY);",
		DownScript: "DROP TABLE widgets;",
	}}

	require.NoError(t, runMigrations(ctx, db, registered))
	require.NoError(t, runMigrations(ctx, db, registered))

	applied, err := NewMigrationStore(db).GetAppliedMigrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, applied)
	assert.True(t, db.Migrator().HasTable("widgets"))

	require.NoError(t, NewMigrationStore(db).RemoveMigration(ctx, registered[0]))
	assert.False(t, db.Migrator().HasTable("widgets"))
}

func TestGetAppliedMigrations_NoTable(t *testing.T) {
	db := openMemoryDB(t)

	applied, err := NewMigrationStore(db).GetAppliedMigrations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestApplySchema_SQLiteAutoMigrates(t *testing.T) {
	db := openMemoryDB(t)
	cfg := &config.Config{Env: "test", DBDriver: config.DriverSQLite}

	require.NoError(t, ApplySchema(context.Background(), db, cfg))

	for _, table := range []string{"users", "posts", "comments", "upvotes"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	author := models.User{ClerkUserID: "user_1", Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, db.Create(&author).Error)
	assert.NotEqual(t, uuid.Nil, author.ID)
	assert.Equal(t, models.RoleUser, author.Role)

	commentID := uuid.New()
	voter := uuid.New()
	require.NoError(t, db.Create(&models.Upvote{CommentID: commentID, UserID: voter}).Error)
	assert.Error(t, db.Create(&models.Upvote{CommentID: commentID, UserID: voter}).Error, "duplicate vote must violate the unique index")

	status, err := GetSchemaStatus(context.Background(), db, cfg)
	require.NoError(t, err)
	assert.False(t, status.WillRunSQL)
	assert.True(t, status.WillRunAutoMigrate)
}
