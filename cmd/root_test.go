package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	// Collect subcommand names.
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	// Verify expected subcommands are registered.
	expected := []string{
		"catalogo", "municipios", "eleitorado", "geojson",
		"bandeira", "brasao", "serie", "senadores", "senador",
		"partidos", "ufs", "fontes", "serve", "config",
	}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "dadosbr", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestSerieCommand_HasSubcommands(t *testing.T) {
	cmds := serieCmd.Commands()
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"ipca", "selic", "tr", "poupanca", "reservas", "risco-brasil", "salario-minimo"}
	for _, name := range expected {
		assert.True(t, names[name], "serie should have subcommand %q", name)
	}
}

func TestSerieSubcommands_Flags(t *testing.T) {
	for _, c := range []string{"ipca", "selic", "tr", "poupanca", "reservas"} {
		sub, _, err := serieCmd.Find([]string{c})
		require.NoError(t, err)
		for _, flagName := range []string{"ultimos", "inicio", "fim", "format", "output"} {
			assert.NotNil(t, sub.Flags().Lookup(flagName), "serie %s should have --%s flag", c, flagName)
		}
	}

	flag := serieReservasCmd.Flags().Lookup("periodo")
	require.NotNil(t, flag)
	assert.Equal(t, "mensal", flag.DefValue)

	flag = serieSalarioMinimoCmd.Flags().Lookup("tipo")
	require.NotNil(t, flag)
	assert.Equal(t, "nominal", flag.DefValue)

	assert.NotNil(t, serieRiscoBrasilCmd.Flags().Lookup("index"))
	assert.NotNil(t, serieSalarioMinimoCmd.Flags().Lookup("index"))
}

func TestImageCommands_Flags(t *testing.T) {
	for _, c := range []*cobra.Command{bandeiraCmd, brasaoCmd} {
		flag := c.Flags().Lookup("tamanho")
		require.NotNil(t, flag, "%s should have --tamanho flag", c.Name())
		assert.Equal(t, "100", flag.DefValue)
	}
}

func TestSenadoresCommand_Flags(t *testing.T) {
	flag := senadoresCmd.Flags().Lookup("situacao")
	require.NotNil(t, flag)
	assert.Equal(t, "atual", flag.DefValue)

	assert.NotNil(t, senadoresCmd.Flags().Lookup("uf"))
	assert.NotNil(t, senadoresCmd.Flags().Lookup("suplentes"))
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestUfsCommand_Flags(t *testing.T) {
	flag := ufsCmd.Flags().Lookup("extintas")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
