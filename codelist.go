package edi

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/speakeasy-api/edi/domain"
	"github.com/speakeasy-api/openapi/jsonschema/oas3"
	"github.com/speakeasy-api/openapi/openapi"
	"gopkg.in/yaml.v3"
)

// CodeListExtension marks an OpenAPI schema as a named EDI code list.
const CodeListExtension = "x-edi-code-list"

// LoadCodeLists reads an OpenAPI document and returns every schema tagged with
// the x-edi-code-list extension as a domain keyed by the extension value.
func LoadCodeLists(ctx context.Context, r io.Reader) (map[string]domain.Domain, error) {
	doc, validationErrs, err := openapi.Unmarshal(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	if len(validationErrs) > 0 {
		return nil, fmt.Errorf("OpenAPI validation failed: %v", validationErrs[0])
	}

	lists := make(map[string]domain.Domain)
	var errs []string

	for item := range openapi.Walk(ctx, doc) {
		err := item.Match(openapi.Matcher{
			Schema: func(s *oas3.JSONSchema[oas3.Referenceable]) error {
				ext := s.GetExtensions()
				if ext == nil {
					return nil
				}
				node, ok := ext.Get(CodeListExtension)
				if !ok {
					return nil
				}
				name, err := codeListName(node)
				if err != nil {
					return err
				}
				if _, dup := lists[name]; dup {
					return fmt.Errorf("code list %q is declared twice", name)
				}
				left := s.GetLeft()
				if left == nil {
					return fmt.Errorf("code list %q: references and boolean schemas are not supported", name)
				}
				d, err := domain.FromSchema(left)
				if err != nil {
					return fmt.Errorf("code list %q: %w", name, err)
				}
				lists[name] = d
				return nil
			},
		})
		if err != nil {
			errs = append(errs, fmt.Sprintf("%v: %v", item.Location, err))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("code list errors:\n  %s", strings.Join(errs, "\n  "))
	}
	return lists, nil
}

func codeListName(node *yaml.Node) (string, error) {
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%s must be a string", CodeListExtension)
	}
	name := strings.TrimSpace(node.Value)
	if name == "" {
		return "", fmt.Errorf("%s requires a name", CodeListExtension)
	}
	return name, nil
}
