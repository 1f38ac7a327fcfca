package domain

import "fmt"

// Client is a person who can rent movies.
type Client struct {
	// ID is the unique identifier of the client. IDs are kept as strings.
	ID string `json:"id"`

	// Name is the full name of the client.
	Name string `json:"name"`
}

// NewClient builds a validated Client.
func NewClient(id, name string) (Client, error) {
	c := Client{ID: id, Name: name}
	if err := c.Validate(); err != nil {
		return Client{}, err
	}
	return c, nil
}

// Key returns the client ID.
func (c Client) Key() string { return c.ID }

// Validate checks that every field can be stored.
func (c Client) Validate() error {
	if err := checkField("id", c.ID); err != nil {
		return err
	}
	return checkField("name", c.Name)
}

func (c Client) String() string {
	return fmt.Sprintf("ID: %s\nName: %s", c.ID, c.Name)
}
