// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account records before they reach the vault
// store.
//
// [RecordValidator] accepts a models.Record, a *models.Record or a batch
// ([]models.Record) and reports the first rule a value breaks. Field names
// passed to Validate restrict the check to those fields; [FieldRecords]
// additionally rejects empty batches and repeated names.
package validators

import "context"

// Validator validates a value, optionally only the named fields of it.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
