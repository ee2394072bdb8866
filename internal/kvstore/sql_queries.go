// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kvstore

import (
	sq "github.com/Masterminds/squirrel"
)

// All SQL-backed stores share the kv_entries table:
//
//	entry_key   TEXT PRIMARY KEY
//	entry_value TEXT NOT NULL
//	updated_at  TIMESTAMP NOT NULL
//
// Statements are built with squirrel so placeholder formats stay correct for
// both dialects and variable-length key lists expand safely.

func buildGetQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select("entry_value").
		From("kv_entries").
		Where(sq.Eq{"entry_key": key}).
		ToSql()
}

func buildMultiGetQuery(b sq.StatementBuilderType, keys []string) (string, []any, error) {
	return b.Select("entry_key", "entry_value").
		From("kv_entries").
		Where(sq.Eq{"entry_key": keys}).
		ToSql()
}

func buildRemoveQuery(b sq.StatementBuilderType, keys []string) (string, []any, error) {
	return b.Delete("kv_entries").
		Where(sq.Eq{"entry_key": keys}).
		ToSql()
}

func buildUpsertQuery(b sq.StatementBuilderType, key, value string, updatedAt any) (string, []any, error) {
	return b.Insert("kv_entries").
		Columns("entry_key", "entry_value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT (entry_key) DO UPDATE SET entry_value = excluded.entry_value, updated_at = excluded.updated_at").
		ToSql()
}

func buildGetAllKeysQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("entry_key").
		From("kv_entries").
		OrderBy("updated_at", "entry_key").
		ToSql()
}
