package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/prosescan/internal/config"
	"github.com/ludo-technologies/prosescan/internal/constants"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a prosescan configuration file",
		Long: `Generate a documented prosescan configuration file with sensible defaults.

By default, creates .prosescan.yaml in the current directory with the full
rule catalog. Use --interactive for a guided setup wizard.

Examples:
  # Create .prosescan.yaml in current directory
  prosescan init

  # Custom output path
  prosescan init --config custom.yaml

  # Overwrite existing file
  prosescan init --force

  # Generate smaller config with essential options only
  prosescan init --minimal

  # Interactive setup wizard
  prosescan init --interactive
  prosescan init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", constants.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().Bool("minimal", false,
		"Generate minimal config with essential options only")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")

	contentType := config.ContentTypeGeneral
	strictness := config.StrictnessStandard

	// Run interactive setup if requested
	if interactive {
		var err error
		var interactiveConfigPath string
		contentType, strictness, interactiveConfigPath, err = runInteractiveSetup(configPath)
		if err != nil {
			return err
		}
		configPath = interactiveConfigPath
	}

	// Check if file exists
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	// Check if parent directory exists
	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	// Generate config content
	var content string
	if minimal {
		content = config.GetMinimalConfigTemplate()
	} else {
		var err error
		content, err = config.GetFullConfigTemplate(contentType, strictness)
		if err != nil {
			return err
		}
	}

	// Write to file
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'prosescan lint .' to lint your documents.")

	return nil
}

func runInteractiveSetup(defaultConfigPath string) (config.ContentType, config.Strictness, string, error) {
	fmt.Println()
	fmt.Println("prosescan Configuration Setup")
	fmt.Println("=============================")
	fmt.Println()

	// Content type selection
	contentTypes := []struct {
		Label       string
		Description string
		Value       config.ContentType
	}{
		{"General prose", "Balanced defaults for any document", config.ContentTypeGeneral},
		{"Blog / personal writing", "Allows direct reader address and self-reference", config.ContentTypeBlog},
		{"Technical documentation", "Tolerates passive voice and uniform structure", config.ContentTypeDocs},
		{"Marketing copy", "Promotional tone rules disabled", config.ContentTypeMarketing},
	}

	contentTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	contentPrompt := promptui.Select{
		Label:     "What kind of prose will you lint?",
		Items:     contentTypes,
		Templates: contentTemplates,
	}

	contentIdx, _, err := contentPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("content type selection cancelled: %w", err)
	}
	selectedContent := contentTypes[contentIdx].Value

	fmt.Println()

	// Strictness selection
	strictnessLevels := []struct {
		Label       string
		Description string
		Value       config.Strictness
	}{
		{"Standard (recommended)", "Balanced thresholds for most writing", config.StrictnessStandard},
		{"Relaxed", "Higher thresholds, fewer warnings", config.StrictnessRelaxed},
		{"Strict", "Lower thresholds, WARN fails the run", config.StrictnessStrict},
	}

	strictnessTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	strictnessPrompt := promptui.Select{
		Label:     "How strict should the linting be?",
		Items:     strictnessLevels,
		Templates: strictnessTemplates,
	}

	strictnessIdx, _, err := strictnessPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("strictness selection cancelled: %w", err)
	}
	selectedStrictness := strictnessLevels[strictnessIdx].Value

	fmt.Println()

	// Output path prompt
	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}

	outputPath, err := outputPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("output path input cancelled: %w", err)
	}

	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Println()
	fmt.Printf("Creating %s... ", outputPath)

	return selectedContent, selectedStrictness, outputPath, nil
}
