package domain

// Developer status labels shown next to a package owner
const (
	StatusCLTeamMember     = "CLteam Member"
	StatusTrustedDeveloper = "Trusted Developer"
)

var clteamMembers = []string{
	"Rejzi-dich",
	"CodeLibraty",
}

var trustedDevelopers = []string{
	"trusted_dev1",
	"trusted_dev2",
	"trusted_dev3",
}

// DeveloperStatus classifies a repository owner's login against the two
// static allow-lists. Returns an empty string for everyone else.
func DeveloperStatus(login string) string {
	for _, member := range clteamMembers {
		if login == member {
			return StatusCLTeamMember
		}
	}
	for _, dev := range trustedDevelopers {
		if login == dev {
			return StatusTrustedDeveloper
		}
	}
	return ""
}
