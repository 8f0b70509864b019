package openapi

import (
	"context"
	"fmt"
	"runtime"

	"github.com/speakeasy-api/oasparams/jsonpointer"
	"github.com/speakeasy-api/oasparams/validation"
	"github.com/speakeasy-api/oasparams/yml"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Parameters is an ordered list of parameters, as found on an operation or path item.
type Parameters []ReferencedParameter

// Find returns the inline parameter with the provided name and location, or nil if there is none.
// References are not resolved.
func (ps Parameters) Find(name string, in ParameterIn) *Parameter {
	for _, rp := range ps {
		p := rp.GetRight()
		if p != nil && p.GetName() == name && p.GetIn() == in {
			return p
		}
	}

	return nil
}

type parameterKey struct {
	name string
	in   ParameterIn
}

// UnmarshalParameters decodes a sequence of parameters concurrently.
//
// Each element is decoded independently: elements that fail to decode are reported in the returned
// validation errors and omitted from the result. Inline parameters sharing a name and location are
// reported as well. The validation errors are sorted by their position in the document.
// An error is only returned if node is not a sequence or decoding was cancelled.
func UnmarshalParameters(ctx context.Context, path jsonpointer.JSONPointer, node *yaml.Node) (Parameters, []error, error) {
	resolved := yml.ResolveAlias(yml.UnwrapDocument(node))
	if resolved == nil || resolved.Kind != yaml.SequenceNode {
		kind := "nothing"
		if resolved != nil {
			kind = yml.NodeKindToString(resolved.Kind)
		}
		return nil, nil, validation.NewDecodeError(validation.RuleValidationTypeMismatch, validation.NewTypeMismatchError("parameters", "parameters expected array, got %s", kind), node, path)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	numJobs := len(resolved.Content)
	results := make([]*ReferencedParameter, numJobs)
	jobErrs := make([]error, numJobs)

	for i, elementNode := range resolved.Content {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rp, err := UnmarshalReferencedParameter(ctx, path.AppendIndex(i), elementNode)
			if err != nil {
				jobErrs[i] = err
				return nil
			}

			results[i] = &rp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	params := make(Parameters, 0, numJobs)
	validationErrs := []error{}
	seen := map[parameterKey]int{}

	for i, rp := range results {
		if jobErrs[i] != nil {
			validationErrs = append(validationErrs, jobErrs[i])
			continue
		}

		if p := rp.GetRight(); p != nil {
			key := parameterKey{name: p.GetName(), in: p.GetIn()}
			if first, ok := seen[key]; ok {
				validationErrs = append(validationErrs, validation.NewDecodeError(
					validation.RuleValidationOperationParameters,
					fmt.Errorf("parameter %q in %q is a duplicate of parameter %d", key.name, key.in, first),
					resolved.Content[i],
					path.AppendIndex(i),
				))
				continue
			}
			seen[key] = i
		}

		params = append(params, *rp)
	}

	validation.SortValidationErrors(validationErrs)

	return params, validationErrs, nil
}

// MarshalParameters encodes the parameters as a sequence node, in order.
func MarshalParameters(ctx context.Context, ps Parameters) (*yaml.Node, error) {
	node := yml.CreateSliceNode()

	for i, rp := range ps {
		elementNode, err := MarshalReferencedParameter(ctx, rp)
		if err != nil {
			return nil, fmt.Errorf("parameters[%d]: %w", i, err)
		}
		node.Content = append(node.Content, elementNode)
	}

	return node, nil
}
