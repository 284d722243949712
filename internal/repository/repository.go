package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"streaming-catalog/internal/database"

	"gorm.io/gorm"
)

const categorySeparator = ", "

type base struct {
	db      *database.Database
	timeout time.Duration
}

func newBase(db *database.Database) base {
	return base{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

type categoryRow struct {
	ContenidoID uint
	Nombre      string
}

// categoryNames returns the joined category names of each content id, keyed by
// id. Ids without categories are absent from the map. Names keep the order in
// which the associations were inserted.
func categoryNames(db *gorm.DB, contentType string, ids []uint) (map[uint]*string, error) {
	result := make(map[uint]*string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []categoryRow
	err := db.Table("contenido_categoria cc").
		Select("cc.contenido_id, c.nombre").
		Joins("JOIN categorias c ON cc.categoria_id = c.id").
		Where("cc.tipo_contenido = ? AND cc.contenido_id IN ?", contentType, ids).
		Order("cc.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	grouped := make(map[uint][]string, len(ids))
	for _, row := range rows {
		grouped[row.ContenidoID] = append(grouped[row.ContenidoID], row.Nombre)
	}
	for id, names := range grouped {
		joined := strings.Join(names, categorySeparator)
		result[id] = &joined
	}
	return result, nil
}

// categorizedIDs is the subquery of content ids of one type tagged with an
// existing category.
func categorizedIDs(db *gorm.DB, contentType string, categoryID uint) *gorm.DB {
	return db.Table("contenido_categoria cc").
		Select("cc.contenido_id").
		Joins("JOIN categorias c ON cc.categoria_id = c.id").
		Where("c.id = ? AND cc.tipo_contenido = ?", categoryID, contentType)
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
