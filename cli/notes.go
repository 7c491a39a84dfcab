package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Inspect stored minute notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every note with its first line, sorted by key",
	Args:  cobra.NoArgs,
	RunE:  runNotesList,
}

var notesShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Print one note (key format: 2006-01-02-15-04)",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesShow,
}

func init() {
	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesShowCmd)
}

func runNotesList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	out := cmd.OutOrStdout()
	entries := store.All()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No notes in %s\n", store.Path())
		return nil
	}
	for _, e := range entries {
		lock := ""
		if e.Note.Locked {
			lock = " [locked]"
		}
		fmt.Fprintf(out, "%s  %s%s\n", e.Key, truncateRunes(firstLine(e.Note.Content), 60), lock)
	}
	return nil
}

func runNotesShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	note, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("no note for %s in %s", args[0], store.Path())
	}
	fmt.Fprintln(cmd.OutOrStdout(), note.Content)
	return nil
}
