package appmenu

import (
	"fmt"
	"strconv"
	"strings"

	"fadel/internal/config"

	"github.com/samber/lo"
)

// Stable menu identifiers. Dispatch depends on these strings; never rename them.
const (
	IDOpen        = "open"
	IDOpenFromURL = "openFromURL"
	IDOpenRecent  = "open-recent"
	IDReset       = "reset"
	IDQuit        = "quit"
	IDAbout       = "about"
)

const recentPrefix = IDOpenRecent + "-"

// RecentID returns the identifier of the recent-file entry at index
func RecentID(index int) string {
	return recentPrefix + strconv.Itoa(index)
}

// ParseRecentID extracts the index from an identifier produced by RecentID
func ParseRecentID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, recentPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	index, err := strconv.Atoi(rest)
	if err != nil || index < 0 || strconv.Itoa(index) != rest {
		return 0, false
	}
	return index, true
}

// Build returns the application menu: native Copy, File and Help.
// The Recent submenu starts empty.
func Build(about config.About) (Tree, error) {
	return NewTree(
		Native(RoleCopy, "Copy"),
		Submenu("", "File",
			ActionWithShortcut(IDOpen, "Open", "o"),
			Action(IDOpenFromURL, "Open Fadel URL"),
			Submenu(IDOpenRecent, "Recent"),
			Separator(),
			Action(IDReset, "Reset"),
			Separator(),
			ActionWithShortcut(IDQuit, "Quit", "q"),
		),
		Submenu("", "Help",
			Action(IDAbout, fmt.Sprintf("About %s", about.Name)),
		),
	)
}

// RecentEntries returns one action per path, in order, identified by position
func RecentEntries(paths []string) []Entry {
	return lo.Map(paths, func(p string, i int) Entry {
		return Action(RecentID(i), p)
	})
}
