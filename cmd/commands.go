package cmd

func init() {
	rootCmd.AddCommand(
		NewGenerateCommand(),
		NewSecretCommand(),
		NewVersionCommand(),
	)
}
