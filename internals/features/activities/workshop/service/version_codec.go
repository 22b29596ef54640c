package service

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	workshopModel "coachfit_backend/internals/features/activities/workshop/model"
)

// VersionNone indica que el taller nunca se cerró.
const VersionNone = 0

// NormalizeVersion lleva una versión de representación desconocida a un
// entero canónico, truncando hacia cero. Las filas históricas guardaron la
// versión como número o como string según la época de inserción, así que
// nunca se compara contra la versión actual sin pasar por acá.
func NormalizeVersion(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// NormalizeStoredVersion decodifica el jsonb crudo de la fila de encuesta.
func NormalizeStoredVersion(raw datatypes.JSON) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return NormalizeVersion(v)
}

// VersionJSON serializa la versión como número JSON plano (escrituras nuevas).
func VersionJSON(v int) datatypes.JSON {
	return datatypes.JSON(strconv.AppendInt(nil, int64(v), 10))
}

// DateLabel congela una fecha como etiqueta dd/mm/yy. Es un snapshot de
// presentación, no se recalcula después.
func DateLabel(t time.Time) string {
	return t.Format("02/01/06")
}

// CurrentVersion devuelve el número de la última versión registrada para la
// actividad (VersionNone si no hay ninguna). Como los números crecen de a 1,
// el máximo es siempre el último.
func CurrentVersion(db *gorm.DB, activityID uuid.UUID) (int, error) {
	var n int
	err := db.Model(&workshopModel.WorkshopVersionModel{}).
		Where("workshop_version_activity_id = ?", activityID).
		Select("COALESCE(MAX(workshop_version_number), 0)").
		Scan(&n).Error
	if err != nil {
		return VersionNone, err
	}
	return n, nil
}
