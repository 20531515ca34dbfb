package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Greenkack/pvoffer-backend/pkg/db"
	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
	pkgerrors "github.com/Greenkack/pvoffer-backend/pkg/errors"
)

// Repository provides persistence for all catalog collections.
type Repository struct {
	client *db.Client
}

// NewRepository builds a repository on top of the shared db client.
func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

func listOrdered[T any](ctx context.Context, conn *gorm.DB, order string) ([]T, error) {
	var out []T
	if err := conn.WithContext(ctx).Order(order).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func getByID[T any](ctx context.Context, conn *gorm.DB, id string) (*T, error) {
	var row T
	if err := conn.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("record %s not found", id))
		}
		return nil, err
	}
	return &row, nil
}

func deleteByID[T any](ctx context.Context, conn *gorm.DB, id string) (bool, error) {
	var row T
	res := conn.WithContext(ctx).Where("id = ?", id).Delete(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// updateByID applies a partial update and reports whether a row matched.
// updated_at is bumped even when the patch is otherwise empty, mirroring how
// the store has always recorded modification times.
func updateByID[T any](ctx context.Context, conn *gorm.DB, id string, fields map[string]any) (bool, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["updated_at"] = time.Now().UTC()
	var row T
	res := conn.WithContext(ctx).Model(&row).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Modules

func (r *Repository) InsertModule(ctx context.Context, m *models.SolarModule) error {
	if m.ID == "" {
		m.ID = GenerateID(enums.ImportCategoryModules)
	}
	return r.client.DB().WithContext(ctx).Create(m).Error
}

func (r *Repository) ListModules(ctx context.Context) ([]models.SolarModule, error) {
	return listOrdered[models.SolarModule](ctx, r.client.DB(), "manufacturer, model")
}

func (r *Repository) GetModule(ctx context.Context, id string) (*models.SolarModule, error) {
	return getByID[models.SolarModule](ctx, r.client.DB(), id)
}

func (r *Repository) UpdateModule(ctx context.Context, id string, patch ModulePatch) (bool, error) {
	return updateByID[models.SolarModule](ctx, r.client.DB(), id, patch.fields())
}

func (r *Repository) DeleteModule(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.SolarModule](ctx, r.client.DB(), id)
}

// Inverters

func (r *Repository) InsertInverter(ctx context.Context, inv *models.Inverter) error {
	if inv.ID == "" {
		inv.ID = GenerateID(enums.ImportCategoryInverters)
	}
	return r.client.DB().WithContext(ctx).Create(inv).Error
}

func (r *Repository) ListInverters(ctx context.Context) ([]models.Inverter, error) {
	return listOrdered[models.Inverter](ctx, r.client.DB(), "manufacturer, model")
}

func (r *Repository) GetInverter(ctx context.Context, id string) (*models.Inverter, error) {
	return getByID[models.Inverter](ctx, r.client.DB(), id)
}

func (r *Repository) UpdateInverter(ctx context.Context, id string, patch InverterPatch) (bool, error) {
	return updateByID[models.Inverter](ctx, r.client.DB(), id, patch.fields())
}

func (r *Repository) DeleteInverter(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.Inverter](ctx, r.client.DB(), id)
}

// Storages

func (r *Repository) InsertStorage(ctx context.Context, s *models.Storage) error {
	if s.ID == "" {
		s.ID = GenerateID(enums.ImportCategoryStorages)
	}
	return r.client.DB().WithContext(ctx).Create(s).Error
}

func (r *Repository) ListStorages(ctx context.Context) ([]models.Storage, error) {
	return listOrdered[models.Storage](ctx, r.client.DB(), "manufacturer, model")
}

func (r *Repository) GetStorage(ctx context.Context, id string) (*models.Storage, error) {
	return getByID[models.Storage](ctx, r.client.DB(), id)
}

func (r *Repository) UpdateStorage(ctx context.Context, id string, patch StoragePatch) (bool, error) {
	return updateByID[models.Storage](ctx, r.client.DB(), id, patch.fields())
}

func (r *Repository) DeleteStorage(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.Storage](ctx, r.client.DB(), id)
}

// Accessories

func (r *Repository) InsertAccessory(ctx context.Context, a *models.Accessory) error {
	if a.ID == "" {
		a.ID = GenerateID(enums.ImportCategoryAccessories)
	}
	return r.client.DB().WithContext(ctx).Create(a).Error
}

func (r *Repository) ListAccessories(ctx context.Context) ([]models.Accessory, error) {
	return listOrdered[models.Accessory](ctx, r.client.DB(), "category, manufacturer, name")
}

func (r *Repository) GetAccessory(ctx context.Context, id string) (*models.Accessory, error) {
	return getByID[models.Accessory](ctx, r.client.DB(), id)
}

func (r *Repository) UpdateAccessory(ctx context.Context, id string, patch AccessoryPatch) (bool, error) {
	return updateByID[models.Accessory](ctx, r.client.DB(), id, patch.fields())
}

func (r *Repository) DeleteAccessory(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.Accessory](ctx, r.client.DB(), id)
}

// Companies

func (r *Repository) InsertCompany(ctx context.Context, c *models.Company) error {
	if c.ID == "" {
		c.ID = GenerateID(enums.ImportCategoryCompanies)
	}
	return r.client.DB().WithContext(ctx).Create(c).Error
}

func (r *Repository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return listOrdered[models.Company](ctx, r.client.DB(), "name")
}

func (r *Repository) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	return getByID[models.Company](ctx, r.client.DB(), id)
}

func (r *Repository) UpdateCompany(ctx context.Context, id string, patch CompanyPatch) (bool, error) {
	return updateByID[models.Company](ctx, r.client.DB(), id, patch.fields())
}

func (r *Repository) DeleteCompany(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.Company](ctx, r.client.DB(), id)
}

// Projects

func (r *Repository) InsertProject(ctx context.Context, p *models.Project) error {
	if p.ID == "" {
		p.ID = GenerateProjectID()
	}
	return r.client.DB().WithContext(ctx).Create(p).Error
}

func (r *Repository) ListProjects(ctx context.Context) ([]models.Project, error) {
	return listOrdered[models.Project](ctx, r.client.DB(), "created_at DESC")
}

func (r *Repository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return getByID[models.Project](ctx, r.client.DB(), id)
}

func (r *Repository) DeleteProject(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.Project](ctx, r.client.DB(), id)
}

// Bulk operations

// BulkInsertModules inserts all rows in a single transaction, preserving the
// order of the input slice.
func (r *Repository) BulkInsertModules(ctx context.Context, rows []models.SolarModule) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = GenerateID(enums.ImportCategoryModules)
			}
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) BulkInsertInverters(ctx context.Context, rows []models.Inverter) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = GenerateID(enums.ImportCategoryInverters)
			}
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) BulkInsertStorages(ctx context.Context, rows []models.Storage) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = GenerateID(enums.ImportCategoryStorages)
			}
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) BulkInsertAccessories(ctx context.Context, rows []models.Accessory) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = GenerateID(enums.ImportCategoryAccessories)
			}
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) BulkInsertCompanies(ctx context.Context, rows []models.Company) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = GenerateID(enums.ImportCategoryCompanies)
			}
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ClearCategory removes all rows from the named collection and returns the
// number of rows deleted.
func (r *Repository) ClearCategory(ctx context.Context, category enums.ImportCategory) (int64, error) {
	conn := r.client.DB().WithContext(ctx)
	var res *gorm.DB
	switch category {
	case enums.ImportCategoryModules:
		res = conn.Where("1 = 1").Delete(&models.SolarModule{})
	case enums.ImportCategoryInverters:
		res = conn.Where("1 = 1").Delete(&models.Inverter{})
	case enums.ImportCategoryStorages:
		res = conn.Where("1 = 1").Delete(&models.Storage{})
	case enums.ImportCategoryAccessories:
		res = conn.Where("1 = 1").Delete(&models.Accessory{})
	case enums.ImportCategoryCompanies:
		res = conn.Where("1 = 1").Delete(&models.Company{})
	default:
		return 0, pkgerrors.New(pkgerrors.CodeUnknownCategory, fmt.Sprintf("Unknown category: %s", category))
	}
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Stats reports the row count of every catalog collection.
type Stats struct {
	Modules     int64 `json:"modules"`
	Inverters   int64 `json:"inverters"`
	Storages    int64 `json:"storages"`
	Accessories int64 `json:"accessories"`
	Companies   int64 `json:"companies"`
	Projects    int64 `json:"projects"`
}

func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	conn := r.client.DB().WithContext(ctx)
	var stats Stats
	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.SolarModule{}, &stats.Modules},
		{&models.Inverter{}, &stats.Inverters},
		{&models.Storage{}, &stats.Storages},
		{&models.Accessory{}, &stats.Accessories},
		{&models.Company{}, &stats.Companies},
		{&models.Project{}, &stats.Projects},
	}
	for _, c := range counts {
		if err := conn.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
