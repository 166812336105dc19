package cli

import (
	"github.com/spf13/cobra"
)

// RootCommand builds the clubsync command tree.
func (c *Cli) RootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:               "clubsync",
		Short:             "Offline-first client for the clubs catalogue",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(c.io)
	root.SetErr(c.io)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configFile, "config", "", "path to config file (default ./clubsync.yaml)")
	pf.StringVar(&c.flags.serverURL, "server", "", "server URL, overrides server.url")
	pf.StringVar(&c.flags.dbPath, "db", "", "path to local database, overrides storage.path")
	pf.StringVar(&c.flags.passphraseFile, "passphrase-file", "", "path to file containing the storage passphrase")
	pf.BoolVar(&c.flags.offline, "offline", false, "work offline, queue all mutations")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		c.statusCommand(),
		c.syncCommand(),
		c.clubsCommand(),
		c.favoritesCommand(),
		c.listsCommand(),
		c.queueCommand(),
		c.clearCommand(),
		c.runCommand(),
	)
	return root
}
