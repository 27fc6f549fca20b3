package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Identity is an identity document, e.g. a passport.
type Identity struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

func NewIdentity(docType, number string) (Identity, error) {
	if strings.TrimSpace(docType) == "" {
		return Identity{}, fmt.Errorf("%w: identity type cannot be empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(number) == "" {
		return Identity{}, fmt.Errorf("%w: id number cannot be empty", ErrInvalidArgument)
	}
	return Identity{Type: docType, Number: number}, nil
}

func (i Identity) String() string {
	return i.Type + ": " + i.Number
}

// Address is a postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

func NewAddress(street, city, zipCode string) (Address, error) {
	switch {
	case strings.TrimSpace(street) == "":
		return Address{}, fmt.Errorf("%w: street cannot be empty", ErrInvalidArgument)
	case strings.TrimSpace(city) == "":
		return Address{}, fmt.Errorf("%w: city cannot be empty", ErrInvalidArgument)
	case strings.TrimSpace(zipCode) == "":
		return Address{}, fmt.Errorf("%w: zip code cannot be empty", ErrInvalidArgument)
	}
	return Address{Street: street, City: city, ZipCode: zipCode}, nil
}

func (a Address) String() string {
	return a.Street + ", " + a.City + " " + a.ZipCode
}

// CreditCard holds payment card details. Only the masked form ever leaves the
// process: String and MarshalJSON both hide all but the last four digits.
type CreditCard struct {
	number string
	expiry string
	cvv    string
}

func NewCreditCard(number, expiry, cvv string) (CreditCard, error) {
	if len(number) < 13 {
		return CreditCard{}, fmt.Errorf("%w: invalid credit card number", ErrInvalidArgument)
	}
	if strings.TrimSpace(expiry) == "" {
		return CreditCard{}, fmt.Errorf("%w: expiry date cannot be empty", ErrInvalidArgument)
	}
	if len(cvv) < 3 {
		return CreditCard{}, fmt.Errorf("%w: invalid cvv", ErrInvalidArgument)
	}
	return CreditCard{number: number, expiry: expiry, cvv: cvv}, nil
}

// Equal compares cards by number only.
func (c CreditCard) Equal(other CreditCard) bool {
	return c.number == other.number
}

func (c CreditCard) String() string {
	if len(c.number) < 4 {
		return "XXXX-XXXX-XXXX-XXXX"
	}
	return "XXXX-XXXX-XXXX-" + c.number[len(c.number)-4:]
}

func (c CreditCard) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Guest is the person occupying a room.
type Guest struct {
	Name     string   `json:"name"`
	Address  Address  `json:"address"`
	Identity Identity `json:"identity"`
}

// NewGuest requires a name and an address; the identity may be zero.
func NewGuest(name string, address Address, identity Identity) (*Guest, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidArgument)
	}
	if address == (Address{}) {
		return nil, fmt.Errorf("%w: address cannot be empty", ErrInvalidArgument)
	}
	return &Guest{Name: name, Address: address, Identity: identity}, nil
}

// ReserverPayer is the party that makes and pays for a reservation.
type ReserverPayer struct {
	Identity Identity   `json:"identity"`
	Card     CreditCard `json:"card"`
}

func NewReserverPayer(identity Identity, card CreditCard) (*ReserverPayer, error) {
	if identity == (Identity{}) {
		return nil, fmt.Errorf("%w: identity cannot be empty", ErrInvalidArgument)
	}
	if card == (CreditCard{}) {
		return nil, fmt.Errorf("%w: credit card details cannot be empty", ErrInvalidArgument)
	}
	return &ReserverPayer{Identity: identity, Card: card}, nil
}

// ID identifies the payer by document type and number, e.g.
// "PASSPORT:UK-123456789". The type is upper-cased so spelling variants of
// the same document type agree.
func (p *ReserverPayer) ID() string {
	return strings.ToUpper(strings.TrimSpace(p.Identity.Type)) + ":" + p.Identity.Number
}
