package domain

// Department is a read-only directory entry used to resolve display names.
type Department struct {
	ID   int
	Name string
}

// Member is a read-only roster entry.
type Member struct {
	ID         int
	Username   string
	IDNumber   string
	FullName   string
	Grade      string
	Department string
}
