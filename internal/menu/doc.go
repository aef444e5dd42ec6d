// Package menu implements the interactive text menu that drives the
// inventory.
//
// The Controller reads one command per line, dispatches it to the
// inventory or the persistence gateway, and re-renders the inventory:
//
//	ctrl := menu.NewController(inv, gateway, os.Stdin, os.Stdout, logger)
//	if err := ctrl.Run(); err != nil {
//	    // unrecoverable, e.g. the inventory file could not be written
//	}
//
// Commands: l (load), a (add), i (inspect), d (delete), s (save), x (exit).
// Closing standard input behaves like x.
package menu
