// Package maintenance implements the offline commands that operate on the
// embedded Badger database: init, clean, backup and restore.
package maintenance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blogcomments/app/repositories"
)

// Commands runs database maintenance against the Badger directory at DBPath.
// Prompts are read from In and all output goes to Out.
type Commands struct {
	DBPath    string
	BackupDir string
	In        io.Reader
	Out       io.Writer
}

func New(dbPath string) *Commands {
	return &Commands{
		DBPath:    dbPath,
		BackupDir: filepath.Join(filepath.Dir(dbPath), "backups"),
		In:        os.Stdin,
		Out:       os.Stdout,
	}
}

// HandleCommand handles db subcommands and returns an exit code.
func (c *Commands) HandleCommand(args []string) int {
	if len(args) < 1 {
		c.printHelp()
		return 1
	}

	switch args[0] {
	case "clean":
		return c.Clean()
	case "init":
		return c.Init()
	case "backup":
		_, code := c.Backup()
		return code
	case "restore":
		if len(args) < 2 {
			fmt.Fprintln(c.Out, "Error: backup file path required for restore")
			return 1
		}
		return c.Restore(args[1])
	case "help":
		c.printHelp()
		return 0
	default:
		fmt.Fprintf(c.Out, "Unknown db command: %s\n\n", args[0])
		c.printHelp()
		return 1
	}
}

func (c *Commands) printHelp() {
	helpText := `Usage: blogcomments db <command>

Commands:
  init              Initialize a new empty database
  clean             Delete the database
  backup            Write a backup of the database to the backups directory
  restore <file>    Restore the database from a backup
  help              Display this help message
`
	fmt.Fprintln(c.Out, helpText)
}

func (c *Commands) exists() bool {
	_, err := os.Stat(c.DBPath)
	return err == nil
}

func (c *Commands) confirm(question string) bool {
	fmt.Fprintf(c.Out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(c.In).ReadString('\n')
	answer = strings.TrimSpace(answer)
	return answer == "y" || answer == "Y"
}

// Init creates an empty database.
func (c *Commands) Init() int {
	if c.exists() {
		fmt.Fprintln(c.Out, "Database already exists. Use 'clean' first if you want to reinitialize.")
		return 0
	}

	if err := os.MkdirAll(c.DBPath, 0755); err != nil {
		fmt.Fprintf(c.Out, "Failed to create database directory: %v\n", err)
		return 1
	}

	store, err := repositories.NewBadgerStore(c.DBPath)
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to initialize database: %v\n", err)
		return 1
	}
	defer store.Close()

	fmt.Fprintln(c.Out, "Database initialized successfully")
	return 0
}

// Clean removes the database after confirmation.
func (c *Commands) Clean() int {
	if !c.exists() {
		fmt.Fprintln(c.Out, "Database is already clean (does not exist)")
		return 0
	}

	if !c.confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Fprintln(c.Out, "Operation cancelled")
		return 1
	}

	if err := os.RemoveAll(c.DBPath); err != nil {
		fmt.Fprintf(c.Out, "Failed to clean database: %v\n", err)
		return 1
	}
	fmt.Fprintln(c.Out, "Database cleaned successfully")
	return 0
}

// Backup writes a timestamped dump into BackupDir and returns its path.
func (c *Commands) Backup() (string, int) {
	if !c.exists() {
		fmt.Fprintln(c.Out, "No database exists to backup")
		return "", 1
	}

	if err := os.MkdirAll(c.BackupDir, 0755); err != nil {
		fmt.Fprintf(c.Out, "Failed to create backup directory: %v\n", err)
		return "", 1
	}

	store, err := repositories.NewBadgerStore(c.DBPath)
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to open database: %v\n", err)
		return "", 1
	}
	defer store.Close()

	backupFile := filepath.Join(c.BackupDir, fmt.Sprintf("backup_%d.db", time.Now().UnixNano()))
	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to create backup file: %v\n", err)
		return "", 1
	}

	if err := writeBackup(store, f); err != nil {
		fmt.Fprintf(c.Out, "Failed to backup database: %v\n", err)
		return "", 1
	}

	fmt.Fprintf(c.Out, "Database backed up successfully to %s\n", backupFile)
	return backupFile, 0
}

// writeBackup dumps store into w and closes it. A failed close means the
// dump may be incomplete, so it is reported like a failed dump.
func writeBackup(store *repositories.BadgerStore, w io.WriteCloser) error {
	if _, err := store.Backup(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing backup: %w", err)
	}
	return nil
}

// Restore replaces the database with the contents of backupFile. An existing
// database is only replaced after confirmation.
func (c *Commands) Restore(backupFile string) int {
	fi, err := os.Stat(backupFile)
	if err != nil {
		fmt.Fprintf(c.Out, "Backup file does not exist: %s\n", backupFile)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Fprintf(c.Out, "Backup file is empty: %s\n", backupFile)
		return 1
	}

	if c.exists() {
		if !c.confirm("Existing database found. Do you want to replace it?") {
			fmt.Fprintln(c.Out, "Operation cancelled")
			return 1
		}
		if err := os.RemoveAll(c.DBPath); err != nil {
			fmt.Fprintf(c.Out, "Failed to remove existing database: %v\n", err)
			return 1
		}
	}

	if err := os.MkdirAll(c.DBPath, 0755); err != nil {
		fmt.Fprintf(c.Out, "Failed to create database directory: %v\n", err)
		return 1
	}

	store, err := repositories.NewBadgerStore(c.DBPath)
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Fprintf(c.Out, "Failed to open backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	if err := store.Restore(f); err != nil {
		fmt.Fprintf(c.Out, "Failed to restore database: %v\n", err)
		return 1
	}

	fmt.Fprintln(c.Out, "Database restored successfully")
	return 0
}
