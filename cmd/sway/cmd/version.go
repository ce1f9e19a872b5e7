package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the version of the sway CLI and when it was built.",
		Usage: "sway version",
		Run: func([]string) error {
			printVersion()
			return nil
		},
	})
}
