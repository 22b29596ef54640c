package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// GenerateSlug normaliza un string a slug:
// - lower-case
// - espacios y no-alfanuméricos a "-"
// - colapsa "-" repetidos y recorta en los extremos
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > DefaultSlugMaxLen {
		// cortar en límite de runa, no de byte
		cut := DefaultSlugMaxLen
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = strings.Trim(out[:cut], "-")
	}
	return out
}

// EnsureUniqueSlug busca un slug libre en table.column, agregando -2, -3, ...
// Solo considera filas no soft-deleted (softDeleteColumn IS NULL) si se indica.
func EnsureUniqueSlug(db *gorm.DB, base, table, column, softDeleteColumn string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "actividad"
	}

	var count int64
	q := db.Table(table).Where(fmt.Sprintf("%s = ?", column), base)
	if softDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", softDeleteColumn))
	}
	if err := q.Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}

	// buscar el sufijo más alto ya usado
	type row struct{ Slug string }
	var rows []row
	q = db.Table(table).
		Select(column+" as slug").
		Where(fmt.Sprintf("%s = ? OR %s LIKE ?", column, column), base, base+"-%")
	if softDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", softDeleteColumn))
	}
	if err := q.Find(&rows).Error; err != nil {
		return "", err
	}

	maxN := 1
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `-(\d+)$`)
	for _, r := range rows {
		if m := re.FindStringSubmatch(r.Slug); len(m) == 2 {
			var n int
			fmt.Sscanf(m[1], "%d", &n)
			if n > maxN {
				maxN = n
			}
		}
	}

	return fmt.Sprintf("%s-%d", base, maxN+1), nil
}
