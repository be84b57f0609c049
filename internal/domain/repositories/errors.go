package repositories

var (
	ErrNotFound      = &RepositoryError{"record not found"}
	ErrAlreadyExists = &RepositoryError{"record already exists"}
)

type RepositoryError struct {
	message string
}

func (e *RepositoryError) Error() string {
	return e.message
}
