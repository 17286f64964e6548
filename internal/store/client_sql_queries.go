// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	loadNavigationPreferences = `
		SELECT
			main_sidebar_expanded,
			sub_sidebar_open,
			selected_main_item,
			selected_sub_sidebar_item
		FROM navigation_preferences
		WHERE id = 1;`

	saveNavigationPreferences = `
		INSERT INTO navigation_preferences (
			id,
			main_sidebar_expanded,
			sub_sidebar_open,
			selected_main_item,
			selected_sub_sidebar_item,
			updated_at
		) VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			main_sidebar_expanded = excluded.main_sidebar_expanded,
			sub_sidebar_open = excluded.sub_sidebar_open,
			selected_main_item = excluded.selected_main_item,
			selected_sub_sidebar_item = excluded.selected_sub_sidebar_item,
			updated_at = excluded.updated_at;`
)
