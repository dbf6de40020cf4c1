// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"context"
	"encoding/json"
	"fmt"

	openapi2 "github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/validoc/validoc/pkg/types"
)

// Validate round-trips the document through kin-openapi and runs the
// library's structural validation on it. The document is Swagger v2, so
// it is converted to v3 first; conversion failures count as validation
// failures because they indicate a malformed v2 document.
func Validate(ctx context.Context, doc *types.Document) error {
	if doc == nil {
		return fmt.Errorf("no document to validate")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	var v2 openapi2.T
	if err := json.Unmarshal(data, &v2); err != nil {
		return fmt.Errorf("document is not valid Swagger 2.0: %w", err)
	}

	v3, err := openapi2conv.ToV3(&v2)
	if err != nil {
		return fmt.Errorf("document failed v2-to-v3 conversion: %w", err)
	}

	// The converter leaves internal refs unresolved; resolve them before
	// validating or every $ref would be reported as an error.
	loader := openapi3.NewLoader()
	if err := loader.ResolveRefsIn(v3, nil); err != nil {
		return fmt.Errorf("document contains unresolvable references: %w", err)
	}

	if err := v3.Validate(ctx); err != nil {
		return fmt.Errorf("document failed validation: %w", err)
	}
	return nil
}
