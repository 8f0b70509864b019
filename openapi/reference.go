package openapi

import (
	"context"

	"github.com/speakeasy-api/oasparams/jsonpointer"
	"github.com/speakeasy-api/oasparams/references"
	"github.com/speakeasy-api/oasparams/validation"
	"github.com/speakeasy-api/oasparams/values"
	"github.com/speakeasy-api/oasparams/yml"
	"gopkg.in/yaml.v3"
)

// ReferencedParameter is either a reference to a parameter defined elsewhere (left) or an inline parameter (right).
type ReferencedParameter = values.EitherValue[references.Reference, Parameter]

// NewParameterReference creates a ReferencedParameter pointing at ref.
func NewParameterReference(ref references.Reference) ReferencedParameter {
	return values.NewLeft[references.Reference, Parameter](ref)
}

// NewInlineParameter creates a ReferencedParameter holding a copy of p. A nil p yields an empty value,
// which MarshalReferencedParameter rejects with ErrInvalidParameter.
func NewInlineParameter(p *Parameter) ReferencedParameter {
	if p == nil {
		return ReferencedParameter{}
	}
	return values.NewRight[references.Reference](*p)
}

// UnmarshalReferencedParameter decodes either a `$ref` object or an inline parameter.
// Keys other than `$ref` are ignored on a reference object.
func UnmarshalReferencedParameter(ctx context.Context, path jsonpointer.JSONPointer, node *yaml.Node) (ReferencedParameter, error) {
	resolved, err := requireMapping(node, path, "parameter")
	if err != nil {
		return ReferencedParameter{}, err
	}

	if !hasKey(resolved, "$ref") {
		p, err := UnmarshalParameter(ctx, path, resolved)
		if err != nil {
			return ReferencedParameter{}, err
		}
		return NewInlineParameter(p), nil
	}

	ref, refNode, err := getString(resolved, path, "parameter", "$ref")
	if err != nil {
		return ReferencedParameter{}, err
	}

	reference := references.Reference(ref)
	if err := reference.Validate(); err != nil {
		return ReferencedParameter{}, validation.NewDecodeError(validation.RuleValidationInvalidReference, err, refNode, path.Append("$ref"))
	}

	return NewParameterReference(reference), nil
}

// MarshalReferencedParameter encodes a reference as a `$ref` object, or the inline parameter as is.
func MarshalReferencedParameter(ctx context.Context, rp ReferencedParameter) (*yaml.Node, error) {
	if ref := rp.GetLeft(); ref != nil {
		if err := ref.Validate(); err != nil {
			return nil, err
		}
		return yml.CreateMapNode(yml.CreateStringNode("$ref"), yml.CreateStringNode(ref.String())), nil
	}

	return MarshalParameter(ctx, rp.GetRight())
}
