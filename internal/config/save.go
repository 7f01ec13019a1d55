package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SaveUI updates the ui section of the config file in place.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveUI(configPath string, ui UIConfig) error {
	data, err := os.ReadFile(configPath) //nolint:gosec // G304: path is the user's own config file
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	uiNode, err := buildUINode(ui)
	if err != nil {
		return fmt.Errorf("building ui node: %w", err)
	}

	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "ui"},
						uiNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			found := false
			for i := 0; i < len(root.Content)-1; i += 2 {
				if root.Content[i].Value == "ui" {
					root.Content[i+1] = uiNode
					found = true
					break
				}
			}
			if !found {
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: "ui"},
					uiNode,
				)
			}
		}
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(configPath, out, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func buildUINode(ui UIConfig) (*yaml.Node, error) {
	node := &yaml.Node{}
	if err := node.Encode(map[string]bool{
		"group_by_category": ui.GroupByCategory,
		"show_pin_names":    ui.ShowPinNames,
		"show_descriptions": ui.ShowDescriptions,
	}); err != nil {
		return nil, err
	}
	return node, nil
}
