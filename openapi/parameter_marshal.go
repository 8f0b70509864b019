package openapi

import (
	"context"
	"slices"

	"github.com/speakeasy-api/oasparams/errors"
	"github.com/speakeasy-api/oasparams/extensions"
	"github.com/speakeasy-api/oasparams/jsonpointer"
	"github.com/speakeasy-api/oasparams/validation"
	"github.com/speakeasy-api/oasparams/yml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidParameter is returned when marshalling a Parameter that was not built with one of the constructors.
const ErrInvalidParameter = errors.Error("invalid parameter")

// MarshalParameter encodes the parameter as a mapping node.
// Fields holding their default value (required, deprecated, allowEmptyValue, style, explode, allowReserved)
// are omitted, so that decoding the node yields an equal parameter.
func MarshalParameter(ctx context.Context, p *Parameter) (*yaml.Node, error) {
	switch {
	case p == nil:
		return nil, ErrInvalidParameter.Wrap(errors.New("parameter is nil"))
	case p.name == "":
		return nil, ErrInvalidParameter.Wrap(errors.New("name is empty"))
	case p.location == nil:
		return nil, ErrInvalidParameter.Wrapf("parameter %q has no location", p.name)
	case p.payload.IsEmpty():
		return nil, ErrInvalidParameter.Wrapf("parameter %q has neither a schema nor content", p.name)
	}

	if schema := p.payload.GetLeft(); schema != nil {
		if err := schema.validate(); err != nil {
			return nil, ErrInvalidParameter.Wrapf("parameter %q: %w", p.name, err)
		}
	} else if err := p.payload.GetRight().validate(); err != nil {
		return nil, ErrInvalidParameter.Wrapf("parameter %q: %w", p.name, err)
	}
	if err := p.extensions.Validate(); err != nil {
		return nil, ErrInvalidParameter.Wrapf("parameter %q: %w", p.name, err)
	}

	node := yml.CreateMapNode()

	yml.AppendMapNodeElement(node, "name", yml.CreateStringNode(p.name))
	yml.AppendMapNodeElement(node, "in", yml.CreateStringNode(p.location.In().String()))

	var allowEmptyValue bool
	switch location := p.location.(type) {
	case QueryLocation:
		allowEmptyValue = location.AllowEmptyValue
	case HeaderLocation, PathLocation, CookieLocation:
	default:
		return nil, ErrInvalidParameter.Wrapf("parameter %q has unsupported location %T", p.name, p.location)
	}

	if p.location.IsRequired() {
		yml.AppendMapNodeElement(node, "required", yml.CreateBoolNode(true))
	}
	if allowEmptyValue {
		yml.AppendMapNodeElement(node, "allowEmptyValue", yml.CreateBoolNode(true))
	}

	if schema := p.payload.GetLeft(); schema != nil {
		schema.marshalInto(ctx, node, p.location)
	} else {
		yml.AppendMapNodeElement(node, "content", p.payload.GetRight().marshal(ctx))
	}

	if p.description != nil {
		yml.AppendMapNodeElement(node, "description", yml.CreateStringNode(*p.description))
	}
	if p.deprecated {
		yml.AppendMapNodeElement(node, "deprecated", yml.CreateBoolNode(true))
	}

	p.extensions.MarshalInto(node)

	return node, nil
}

// UnmarshalParameter decodes a parameter node found at path in the enclosing document.
//
// Failures are returned as *validation.Error values wrapping one of:
//   - *validation.MissingFieldError when `name` or `in` is absent
//   - *validation.InconsistencyError when a path parameter is not marked required, when both or neither of
//     `schema` and `content` are present, or when `allowEmptyValue` is used outside of a query parameter
//   - *validation.TypeMismatchError or *validation.ValueValidationError for malformed values
func UnmarshalParameter(ctx context.Context, path jsonpointer.JSONPointer, node *yaml.Node) (*Parameter, error) {
	node, err := requireMapping(node, path, "parameter")
	if err != nil {
		return nil, err
	}

	name, nameNode, err := getString(node, path, "parameter", "name")
	if err != nil {
		return nil, err
	}
	if nameNode == nil {
		return nil, validation.NewDecodeError(validation.RuleValidationRequiredField, validation.NewMissingFieldError("`parameter.name` is required"), node, path)
	}
	if name == "" {
		return nil, validation.NewDecodeError(validation.RuleValidationEmptyValue, validation.NewMissingValueError("`parameter.name` must not be empty"), nameNode, path.Append("name"))
	}

	required, _, err := getBool(node, path, "parameter", "required")
	if err != nil {
		return nil, err
	}

	in, inNode, err := getString(node, path, "parameter", "in")
	if err != nil {
		return nil, err
	}
	if inNode == nil {
		return nil, validation.NewDecodeError(validation.RuleValidationRequiredField, validation.NewMissingFieldError("`parameter.in` is required"), node, path)
	}

	location, err := unmarshalLocation(node, path, name, ParameterIn(in), inNode, required)
	if err != nil {
		return nil, err
	}

	payload, err := unmarshalPayload(ctx, node, path, name, location)
	if err != nil {
		return nil, err
	}

	opts := []ParameterOption{}

	description, descriptionNode, err := getString(node, path, "parameter", "description")
	if err != nil {
		return nil, err
	}
	if descriptionNode != nil {
		opts = append(opts, WithDescription(description))
	}

	deprecated, _, err := getBool(node, path, "parameter", "deprecated")
	if err != nil {
		return nil, err
	}
	if deprecated {
		opts = append(opts, WithDeprecated())
	}

	if e := extensions.Unmarshal(node); e != nil {
		opts = append(opts, WithExtensions(e))
	}

	return NewParameter(name, location, payload, opts...), nil
}

func unmarshalLocation(node *yaml.Node, path jsonpointer.JSONPointer, name string, in ParameterIn, inNode *yaml.Node, required bool) (Location, error) {
	if !slices.Contains(parameterInValues, in) {
		return nil, validation.NewDecodeError(validation.RuleValidationAllowedValues, validation.NewValueValidationError("`parameter.in` must be one of [%s], got %q", parameterInList(), in), inNode, path.Append("in"))
	}

	allowEmptyValue, allowEmptyValueNode, err := getBool(node, path, "parameter", "allowEmptyValue")
	if err != nil {
		return nil, err
	}
	if allowEmptyValueNode != nil && in != ParameterInQuery {
		return nil, validation.NewDecodeError(validation.RuleValidationAllowedValues, validation.NewInconsistencyError(name, "`allowEmptyValue` is only valid for `in=query`, got `in=%s`", in), allowEmptyValueNode, path.Append("allowEmptyValue"))
	}

	switch in {
	case ParameterInQuery:
		return QueryLocation{Required: required, AllowEmptyValue: allowEmptyValue}, nil
	case ParameterInHeader:
		return HeaderLocation{Required: required}, nil
	case ParameterInCookie:
		return CookieLocation{Required: required}, nil
	default: // path
		if !required {
			errNode := inNode
			if _, requiredNode, ok := yml.GetMapElementNodes(node, "required"); ok {
				errNode = requiredNode
			}
			return nil, validation.NewDecodeError(validation.RuleValidationRequiredField, validation.NewInconsistencyError(name, "positional `in=path` parameters must be explicitly marked `required: true`"), errNode, path.Append("required"))
		}
		return PathLocation{}, nil
	}
}

// unmarshalPayload checks for the presence of `content` and `schema` before decoding either,
// as schema decoding depends on the already resolved location.
func unmarshalPayload(ctx context.Context, node *yaml.Node, path jsonpointer.JSONPointer, name string, location Location) (Payload, error) {
	hasContent := hasKey(node, "content")
	hasSchema := hasKey(node, "schema")

	switch {
	case hasContent && !hasSchema:
		_, contentNode, _ := yml.GetMapElementNodes(node, "content")
		content, err := unmarshalContent(ctx, path.Append("content"), contentNode)
		if err != nil {
			return Payload{}, err
		}
		return NewContentPayload(content), nil
	case hasSchema && !hasContent:
		schema, err := unmarshalParameterSchema(ctx, path, node, location)
		if err != nil {
			return Payload{}, err
		}
		return NewSchemaPayload(schema), nil
	default:
		return Payload{}, validation.NewDecodeError(validation.RuleValidationMutuallyExclusiveFields, validation.NewInconsistencyError(name, "a parameter must specify exactly one of `content` or `schema`, %s", describePresence(hasContent, hasSchema)), node, path)
	}
}

func describePresence(hasContent, hasSchema bool) string {
	if hasContent && hasSchema {
		return "found both"
	}
	return "found neither"
}
