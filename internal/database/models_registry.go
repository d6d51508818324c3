package database

import "agora/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models, parents first.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Upvote{},
	}
}
