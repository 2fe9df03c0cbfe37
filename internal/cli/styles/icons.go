package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher
	IconArrow     = "" // arrow right
	IconCheck     = "" // check
	IconX         = "" // x
	IconWarning   = "" // warning
	IconInfo      = "" // info
	IconConfig    = "" // config
	IconDatabase  = "" // database
	IconRoute     = "" // signpost
	IconWindow    = "" // window
)
