// Package registry discovers and binds the remote operations from their
// service descriptors. Binding happens once, during construction, and the
// resulting operation table is immutable afterwards.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/sync/errgroup"

	"github.com/magenta-aps/sd-connector/internal/pkg/infrastructure/soap"
	"github.com/magenta-aps/sd-connector/internal/pkg/infrastructure/wsdl"
	sderrors "github.com/magenta-aps/sd-connector/pkg/sd/errors"
)

// descriptor fetches run in parallel during construction, bounded so a
// cold start does not open a connection per descriptor at once.
const maxConcurrentFetches = 4

// operationSuffix is appended by the remote service to every advertised
// operation name. Stripping it yields the canonical method name.
const operationSuffix = "Operation"

type Registry struct {
	operations map[string]soap.BoundOperation
}

// New fetches every listed descriptor through the supplied session, binds
// each one's single operation under its canonical name and returns the
// completed registry. Any descriptor that violates the one-operation
// contract, and any canonical name collision, fails the whole construction:
// no partially bound registry is ever returned.
func New(ctx context.Context, session *soap.Session, baseURL string, locators []string) (*Registry, error) {
	log := logging.GetFromContext(ctx)

	descriptors := make([]*wsdl.Descriptor, len(locators))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, locator := range locators {
		g.Go(func() error {
			doc, err := session.Fetch(groupCtx, baseURL+locator)
			if err != nil {
				return sderrors.NewBindError(
					fmt.Sprintf("failed to fetch descriptor %s: %s", locator, err.Error()),
				)
			}

			d, err := wsdl.Parse(doc)
			if err != nil {
				return sderrors.NewBindError(
					fmt.Sprintf("failed to parse descriptor %s: %s", locator, err.Error()),
				)
			}

			descriptors[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// bind in list order so that contract violations are reported
	// deterministically
	operations := map[string]soap.BoundOperation{}

	for i, d := range descriptors {
		if len(d.Operations) != 1 {
			return nil, sderrors.NewBindError(
				fmt.Sprintf("descriptor %s exposes %d operations, expected exactly one", locators[i], len(d.Operations)),
			)
		}

		advertised := d.Operations[0]
		name := strings.TrimSuffix(advertised.Name, operationSuffix)

		if _, bound := operations[name]; bound {
			return nil, sderrors.NewDuplicateOperationError(
				fmt.Sprintf("descriptor %s binds %s, which is already bound", locators[i], name),
			)
		}

		operations[name] = soap.BoundOperation{
			Name:      name,
			Action:    advertised.SOAPAction,
			Endpoint:  d.Endpoint,
			Namespace: d.TargetNamespace,
		}

		log.Debug("bound operation", "operation", name, "endpoint", d.Endpoint)
	}

	return &Registry{operations: operations}, nil
}

// Lookup returns the bound operation for a canonical name. Names are fixed
// by the client facade, so a miss is a programming error.
func (r *Registry) Lookup(name string) (soap.BoundOperation, error) {
	op, ok := r.operations[name]
	if !ok {
		return soap.BoundOperation{}, sderrors.NewUnknownOperationError(
			fmt.Sprintf("operation %s is not bound", name),
		)
	}

	return op, nil
}

// Operations returns the canonical names of every bound operation, sorted.
func (r *Registry) Operations() []string {
	names := make([]string, 0, len(r.operations))
	for name := range r.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
