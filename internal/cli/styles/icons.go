package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconFont     = "\uf031" // font
	IconSearch   = "\uf002" // search
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconCache    = "\uf49e" // cache
	IconRefresh  = "\uf021" // refresh
)
