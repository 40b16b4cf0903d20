package bank

// Memory-bank status lines. An agent host prefixes every response with
// the current status line.
const (
	StatusActive   = "[MEMORY BANK: ACTIVE]"
	StatusInactive = "[MEMORY BANK: INACTIVE]"
)

// CreateOffer is the question to surface when no memory bank exists.
// The host asks it once; if declined, the session proceeds INACTIVE.
const CreateOffer = "No Memory Bank was found. Would you like to create one? " +
	"It keeps project context across sessions."

// Session is the context assembled at session start by reading the
// canonical files in order.
type Session struct {
	Status  string      `json:"status"`
	Active  bool        `json:"active"`
	Dir     string      `json:"dir"`
	Files   []FileState `json:"files,omitempty"`
	Missing []string    `json:"missing,omitempty"`
	Offer   string      `json:"offer,omitempty"`
}

// Session reads the bank sequentially and assembles the session-start
// context. A missing bank directory degrades to INACTIVE with the
// creation offer; it is not an error. Missing individual files are
// listed in Missing.
func (s *Store) Session(withContent bool) (Session, error) {
	if !s.Exists() {
		return Session{
			Status: StatusInactive,
			Dir:    s.dir,
			Offer:  CreateOffer,
		}, nil
	}

	states, err := s.States(withContent)
	if err != nil {
		return Session{}, err
	}

	var missing []string
	for _, state := range states {
		if !state.Exists {
			missing = append(missing, state.File.Name)
		}
	}

	return Session{
		Status:  StatusActive,
		Active:  true,
		Dir:     s.dir,
		Files:   states,
		Missing: missing,
	}, nil
}
