// File: cmd/packages.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kinesra/simscene/internal/backend/memory"
	"github.com/kinesra/simscene/internal/config"
	"github.com/kinesra/simscene/internal/registry"
)

// packagesCmd lists the packages the catalog configures, together with the
// backend each one is paired with.
var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List the simulation packages configured in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := config.LoadCatalog(appConfig.Catalog.Path)
		if err != nil {
			return err
		}
		backends, err := defaultBackends()
		if err != nil {
			return err
		}

		for _, name := range catalog.Packages() {
			spec, err := catalog.Package(name)
			if err != nil {
				return err
			}
			status := "backend not registered"
			if _, err := backends.Lookup(spec.Backend); err == nil {
				status = "ready"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tbackend=%s\t%s\n", name, spec.Backend, status)
		}
		return nil
	},
}

// defaultBackends returns the backend registry the CLI ships with. Real
// simulation packages register here as they are linked in.
func defaultBackends() (*registry.Backends, error) {
	backends := registry.NewBackends()
	if err := backends.Register("memory", memory.New().Backend()); err != nil {
		return nil, err
	}
	return backends, nil
}

func init() {
	rootCmd.AddCommand(packagesCmd)
}
