package script

import (
	"fmt"
	"mammacheck/internal/model"
)

// Registry provides read-only access to the static step scripts.
type Registry interface {
	// Get returns the script for a step id.
	Get(stepID string) (model.Script, bool)
	// StepIDs lists step ids in presentation order.
	StepIDs() []string
	// All returns every script in presentation order.
	All() []model.Script
}

type registry struct {
	order   []string
	scripts map[string]model.Script
}

// NewRegistry builds the registry from the built-in scripts, validating
// their structure.
func NewRegistry() (Registry, error) {
	scripts := builtinScripts()
	r := &registry{scripts: make(map[string]model.Script, len(scripts))}
	for _, s := range scripts {
		if err := validate(s); err != nil {
			return nil, fmt.Errorf("script %s: %w", s.StepID, err)
		}
		r.order = append(r.order, s.StepID)
		r.scripts[s.StepID] = s
	}
	return r, nil
}

func (r *registry) Get(stepID string) (model.Script, bool) {
	s, ok := r.scripts[stepID]
	return s, ok
}

func (r *registry) StepIDs() []string {
	return append([]string(nil), r.order...)
}

func (r *registry) All() []model.Script {
	out := make([]model.Script, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.scripts[id])
	}
	return out
}

// validate walks the node forest in order and checks that every conditional
// depends on a question already declared, and that question ids are unique.
func validate(s model.Script) error {
	seen := make(map[string]bool)
	return validateNodes(s.Nodes, seen)
}

func validateNodes(nodes []model.ConversationNode, seen map[string]bool) error {
	for _, n := range nodes {
		switch node := n.(type) {
		case model.AssistantMessage:
		case model.Question:
			if seen[node.ID] {
				return fmt.Errorf("duplicate question id %q", node.ID)
			}
			seen[node.ID] = true
		case model.Conditional:
			if !seen[node.DependsOn] {
				return fmt.Errorf("conditional depends on %q before it is asked", node.DependsOn)
			}
			if err := validateNodes(node.Children, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
