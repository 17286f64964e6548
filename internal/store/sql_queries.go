// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/donor-records/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var recordColumns = []string{
	"id",
	"donor",
	"panels",
	"barcode",
	"source",
	"date",
	"amount",
	"observed_by",
	"status",
	"is_highlighted",
	"created_at",
	"updated_at",
}

// searchColumns are the text columns a free-text search looks at.
var searchColumns = []string{"donor", "panels", "barcode", "source", "observed_by"}

const recordsOrder = "created_at DESC"

var returningRecord = "RETURNING " + strings.Join(recordColumns, ", ")

func selectRecords() sq.SelectBuilder {
	return psql.Select(recordColumns...).
		From(models.Record{}.TableName()).
		OrderBy(recordsOrder)
}

func buildListRecordsQuery() (string, []any, error) {
	return wrapBuild(selectRecords().ToSql())
}

// buildSearchRecordsQuery ORs a case-insensitive substring match over the
// search columns. LIKE wildcards in term are matched literally.
func buildSearchRecordsQuery(term string) (string, []any, error) {
	pattern := "%" + escapeLike(term) + "%"

	or := make(sq.Or, 0, len(searchColumns))
	for _, col := range searchColumns {
		or = append(or, sq.ILike{col: pattern})
	}

	return wrapBuild(selectRecords().Where(or).ToSql())
}

func buildFilterRecordsByStatusQuery(status models.Status) (string, []any, error) {
	return wrapBuild(selectRecords().Where(sq.Eq{"status": string(status)}).ToSql())
}

func buildInsertRecordQuery(id string, f models.RecordFields) (string, []any, error) {
	row := models.NewRecordRowFromFields(f)

	return wrapBuild(psql.Insert(models.Record{}.TableName()).
		Columns("id", "donor", "panels", "barcode", "source", "date", "amount", "observed_by", "status", "is_highlighted").
		Values(id, row.Donor, row.Panels, row.Barcode, row.Source, row.Date, row.Amount, row.ObservedBy, row.Status, row.IsHighlighted).
		Suffix(returningRecord).
		ToSql())
}

func buildUpdateRecordQuery(id string, f models.RecordFields) (string, []any, error) {
	row := models.NewRecordRowFromFields(f)

	return wrapBuild(psql.Update(models.Record{}.TableName()).
		SetMap(sq.Eq{
			"donor":          row.Donor,
			"panels":         row.Panels,
			"barcode":        row.Barcode,
			"source":         row.Source,
			"date":           row.Date,
			"amount":         row.Amount,
			"observed_by":    row.ObservedBy,
			"status":         row.Status,
			"is_highlighted": row.IsHighlighted,
			"updated_at":     sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returningRecord).
		ToSql())
}

func buildSetHighlightQuery(id string, flag bool) (string, []any, error) {
	return wrapBuild(psql.Update(models.Record{}.TableName()).
		Set("is_highlighted", flag).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningRecord).
		ToSql())
}

func buildDeleteRecordQuery(id string) (string, []any, error) {
	return wrapBuild(psql.Delete(models.Record{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
