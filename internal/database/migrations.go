package database

import (
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/project-manager-api/internal/models"
	"gorm.io/gorm"
)

// PatchSchema brings databases created by older builds up to date. It is
// best-effort: failures are logged and ignored, and any real problem will
// surface on the first query that touches the affected table.
func PatchSchema(db *gorm.DB) {
	migrator := db.Migrator()

	if migrator.HasTable(&models.Task{}) && !migrator.HasColumn(&models.Task{}, "DueDate") {
		if err := migrator.AddColumn(&models.Task{}, "DueDate"); err != nil {
			log.Warn().Err(err).Msg("could not add tasks.due_date column")
			return
		}
		log.Info().Msg("added tasks.due_date column")
	}

	indexes := []struct {
		model interface{}
		name  string
	}{
		{&models.Project{}, "OwnerID"},
		{&models.Project{}, "CreatedAt"},
		{&models.Task{}, "ProjectID"},
	}
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}
		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			log.Warn().Err(err).Str("index", idx.name).Msg("could not create index")
		}
	}
}
