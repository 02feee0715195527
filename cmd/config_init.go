package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/brasildados/dadosbr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and scaffold configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config.yaml with the current effective settings",
	Long:  "Writes the merged configuration (defaults, config file and environment) to ./config.yaml so it can be edited in place.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		const path = "config.yaml"
		if !force {
			if _, err := os.Stat(path); err == nil {
				return eris.Errorf("config init: %s already exists (use --force to overwrite)", path)
			}
		}

		data, err := renderConfigYAML(cfg)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return eris.Wrapf(err, "config init: write %s", path)
		}

		fmt.Println("wrote", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config.yaml")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

const configHeader = `# dadosbr configuration.
#
# Every key can be overridden with a DADOSBR_* environment variable,
# e.g. DADOSBR_SERVER_PORT=3000 or DADOSBR_LOG_LEVEL=debug.
#
# Empty fontes entries keep each upstream's production URL.

`

// renderConfigYAML marshals c with a usage header.
func renderConfigYAML(c *config.Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	body, err := yaml.Marshal(c)
	if err != nil {
		return nil, eris.Wrap(err, "config init: marshal")
	}
	buf.Write(body)

	return buf.Bytes(), nil
}
