package validation

// Form validators compose the field predicates over a whole input
// structure and return an ordered list of human-readable messages.
// Empty list = valid. Required fields are checked before format.

type LoginInput struct {
	Username string
	Password string
}

func ValidateLogin(in LoginInput) []string {
	var errors []string

	if !Required(in.Username) {
		errors = append(errors, "Username is required.")
	} else if !ValidUsername(in.Username) {
		errors = append(errors, "Invalid username format.")
	}
	if in.Password == "" {
		errors = append(errors, "Password is required.")
	}

	return errors
}

type NewUserInput struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	Email     string
	Role      string
}

func ValidateNewUser(in NewUserInput) []string {
	var errors []string

	if !Required(in.FirstName) || !ValidName(in.FirstName) {
		errors = append(errors, "First name is required.")
	}
	if !Required(in.LastName) || !ValidName(in.LastName) {
		errors = append(errors, "Last name is required.")
	}
	if !Required(in.Username) || !ValidUsername(in.Username) {
		errors = append(errors, "Username must be 3-50 characters, letters/numbers/underscore only.")
	}
	if !Required(in.Password) || !ValidPassword(in.Password) {
		errors = append(errors, "Password must be 12+ characters with uppercase, lowercase, number, and special character.")
	}
	if in.Email != "" && !ValidEmail(in.Email) {
		errors = append(errors, "Email format is invalid.")
	}
	if !Required(in.Role) {
		errors = append(errors, "Role is required.")
	}

	return errors
}

type PatientInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	DateOfBirth string
}

func ValidatePatient(in PatientInput) []string {
	var errors []string

	if !Required(in.FirstName) || !ValidName(in.FirstName) {
		errors = append(errors, "First name is required and must contain only letters.")
	}
	if !Required(in.LastName) || !ValidName(in.LastName) {
		errors = append(errors, "Last name is required and must contain only letters.")
	}
	if in.PhoneNumber != "" && !ValidPhone(in.PhoneNumber) {
		errors = append(errors, "Phone number format is invalid.")
	}
	if in.Email != "" && !ValidEmail(in.Email) {
		errors = append(errors, "Email address format is invalid.")
	}
	if !Required(in.DateOfBirth) || !ValidDate(in.DateOfBirth) {
		errors = append(errors, "Date of birth is required (format: YYYY-MM-DD).")
	}

	return errors
}
