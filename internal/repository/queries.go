package repository

import (
	"time"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

const (
	disasterZonesTable = "disaster_zones"
	safetyTipsTable    = "safety_tips"
	sosRequestsTable   = "sos_requests"
	usersTable         = "users"
)

// dialect собирает SQL c плейсхолдерами $n, которые понимает pgx
var dialect = goqu.Dialect("postgres")

var zoneColumns = []any{
	"id",
	"name",
	"disaster_type",
	"center_latitude",
	"center_longitude",
	"radius",
	"danger_level",
	"is_active",
	"version",
	"created_at",
	"updated_at",
}

var tipColumns = []any{"id", "disaster_zone_id", "title", "content", "created_at"}

var userColumns = []any{"id", "full_name", "email", "password_hash", "role", "created_at", "updated_at"}

// query - готовый к выполнению SQL и его аргументы
type query struct {
	SQL  string
	Args []any
}

func build(ds interface {
	ToSQL() (string, []any, error)
}) (query, error) {
	sql, args, err := ds.ToSQL()
	if err != nil {
		return query{}, err
	}
	return query{SQL: sql, Args: args}, nil
}

// findByDisasterTypeQuery: все зоны с точно таким disaster_type, по возрастанию id
func findByDisasterTypeQuery(t models.DisasterType) (query, error) {
	return build(dialect.From(disasterZonesTable).
		Select(zoneColumns...).
		Where(goqu.C("disaster_type").Eq(string(t))).
		Order(goqu.C("id").Asc()).
		Prepared(true))
}

// countByDangerLevelQuery: количество зон с заданным уровнем опасности
func countByDangerLevelQuery(level models.DangerLevel) (query, error) {
	return build(dialect.From(disasterZonesTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C("danger_level").Eq(string(level))).
		Prepared(true))
}

// countByCreatedAtBeforeQuery: зоны, созданные строго раньше t
func countByCreatedAtBeforeQuery(t time.Time) (query, error) {
	return build(dialect.From(disasterZonesTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C("created_at").Lt(t)).
		Prepared(true))
}

// countByCreatedAtBetweenQuery: зоны, созданные в [lower, upper]. Обе границы включены (BETWEEN).
func countByCreatedAtBetweenQuery(lower, upper time.Time) (query, error) {
	return build(dialect.From(disasterZonesTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C("created_at").Between(goqu.Range(lower, upper))).
		Prepared(true))
}

func zoneByIDQuery(id int64) (query, error) {
	return build(dialect.From(disasterZonesTable).
		Select(zoneColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true))
}

func listZonesQuery(limit, offset uint) (query, error) {
	return build(dialect.From(disasterZonesTable).
		Select(zoneColumns...).
		Order(goqu.C("created_at").Desc(), goqu.C("id").Desc()).
		Limit(limit).
		Offset(offset).
		Prepared(true))
}

func listActiveZonesQuery() (query, error) {
	return build(dialect.From(disasterZonesTable).
		Select(zoneColumns...).
		Where(goqu.C("is_active").IsTrue()).
		Order(goqu.C("id").Asc()).
		Prepared(true))
}

func insertZoneQuery(z *models.DisasterZone) (query, error) {
	return build(dialect.Insert(disasterZonesTable).
		Rows(goqu.Record{
			"name":             z.Name,
			"disaster_type":    string(z.DisasterType),
			"center_latitude":  z.CenterLatitude,
			"center_longitude": z.CenterLongitude,
			"radius":           z.Radius,
			"danger_level":     string(z.DangerLevel),
			"is_active":        z.IsActive,
		}).
		Returning("id", "version", "created_at", "updated_at").
		Prepared(true))
}

// updateZoneQuery обновляет зону, только если версия совпадает. created_at не трогаем.
func updateZoneQuery(z *models.DisasterZone) (query, error) {
	return build(dialect.Update(disasterZonesTable).
		Set(goqu.Record{
			"name":             z.Name,
			"disaster_type":    string(z.DisasterType),
			"center_latitude":  z.CenterLatitude,
			"center_longitude": z.CenterLongitude,
			"radius":           z.Radius,
			"danger_level":     string(z.DangerLevel),
			"is_active":        z.IsActive,
			"version":          goqu.L("version + 1"),
			"updated_at":       goqu.L("NOW()"),
		}).
		Where(goqu.C("id").Eq(z.ID), goqu.C("version").Eq(z.Version)).
		Returning("version", "created_at", "updated_at").
		Prepared(true))
}

func deleteZoneQuery(id int64) (query, error) {
	return build(dialect.Delete(disasterZonesTable).
		Where(goqu.C("id").Eq(id)).
		Prepared(true))
}

func tipsByZoneQuery(zoneID int64) (query, error) {
	return build(dialect.From(safetyTipsTable).
		Select(tipColumns...).
		Where(goqu.C("disaster_zone_id").Eq(zoneID)).
		Order(goqu.C("id").Asc()).
		Prepared(true))
}

func insertTipQuery(tip *models.SafetyTip) (query, error) {
	return build(dialect.Insert(safetyTipsTable).
		Rows(goqu.Record{
			"disaster_zone_id": tip.DisasterZoneID,
			"title":            tip.Title,
			"content":          tip.Content,
		}).
		Returning("id", "created_at").
		Prepared(true))
}

func deleteTipsByZoneQuery(zoneID int64) (query, error) {
	return build(dialect.Delete(safetyTipsTable).
		Where(goqu.C("disaster_zone_id").Eq(zoneID)).
		Prepared(true))
}

// removeTipQuery удаляет совет, только если он принадлежит указанной зоне
func removeTipQuery(zoneID, tipID int64) (query, error) {
	return build(dialect.Delete(safetyTipsTable).
		Where(goqu.C("id").Eq(tipID), goqu.C("disaster_zone_id").Eq(zoneID)).
		Prepared(true))
}

// sosSelect соединяет запрос с пользователем и (необязательно) с зоной
func sosSelect() *goqu.SelectDataset {
	return dialect.From(goqu.T(sosRequestsTable).As("s")).
		Select(
			goqu.I("s.id"),
			goqu.I("s.status"),
			goqu.I("s.latitude"),
			goqu.I("s.longitude"),
			goqu.I("s.message"),
			goqu.I("s.version"),
			goqu.I("s.created_at"),
			goqu.I("s.updated_at"),
			goqu.I("u.id"),
			goqu.I("u.full_name"),
			goqu.I("u.email"),
			goqu.I("u.role"),
			goqu.I("z.id"),
			goqu.I("z.name"),
			goqu.I("z.disaster_type"),
			goqu.I("z.center_latitude"),
			goqu.I("z.center_longitude"),
			goqu.I("z.radius"),
			goqu.I("z.danger_level"),
		).
		InnerJoin(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("s.user_id")))).
		LeftJoin(goqu.T(disasterZonesTable).As("z"), goqu.On(goqu.I("z.id").Eq(goqu.I("s.disaster_zone_id"))))
}

func sosByIDQuery(id int64) (query, error) {
	return build(sosSelect().Where(goqu.I("s.id").Eq(id)).Prepared(true))
}

func listSosQuery(limit, offset uint) (query, error) {
	return build(sosSelect().
		Order(goqu.I("s.created_at").Desc(), goqu.I("s.id").Desc()).
		Limit(limit).
		Offset(offset).
		Prepared(true))
}

func sosByUserQuery(userID int64) (query, error) {
	return build(sosSelect().
		Where(goqu.I("s.user_id").Eq(userID)).
		Order(goqu.I("s.created_at").Desc(), goqu.I("s.id").Desc()).
		Prepared(true))
}

func insertSosQuery(req *models.SosRequest) (query, error) {
	rec := goqu.Record{
		"user_id":   req.User.ID,
		"status":    string(req.Status),
		"latitude":  req.Latitude,
		"longitude": req.Longitude,
		"message":   req.Message,
	}
	if req.DisasterZone != nil {
		rec["disaster_zone_id"] = req.DisasterZone.ID
	}
	return build(dialect.Insert(sosRequestsTable).
		Rows(rec).
		Returning("id", "version", "created_at", "updated_at").
		Prepared(true))
}

// updateSosStatusQuery меняет статус с проверкой версии и обновляет updated_at
func updateSosStatusQuery(id int64, status models.SosStatus, version int) (query, error) {
	return build(dialect.Update(sosRequestsTable).
		Set(goqu.Record{
			"status":     string(status),
			"version":    goqu.L("version + 1"),
			"updated_at": goqu.L("NOW()"),
		}).
		Where(goqu.C("id").Eq(id), goqu.C("version").Eq(version)).
		Returning("version", "updated_at").
		Prepared(true))
}

func countSosByStatusQuery(status models.SosStatus) (query, error) {
	return build(dialect.From(sosRequestsTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C("status").Eq(string(status))).
		Prepared(true))
}

func insertUserQuery(u *models.User) (query, error) {
	return build(dialect.Insert(usersTable).
		Rows(goqu.Record{
			"full_name":     u.FullName,
			"email":         u.Email,
			"password_hash": u.PasswordHash,
			"role":          string(u.Role),
		}).
		Returning("id", "created_at", "updated_at").
		Prepared(true))
}

func userByQuery(column string, value any) (query, error) {
	return build(dialect.From(usersTable).
		Select(userColumns...).
		Where(goqu.C(column).Eq(value)).
		Prepared(true))
}
