package bookingrequest

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength  = 120
	maxNotesLength = 2000
	maxPlateLength = 16
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Customer struct {
	Name  string
	Email string
	Phone string
}

// NewCustomer requires a name; email and phone are optional but the email
// must be well formed when given, since notifications are sent to it.
func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return Customer{}, ErrInvalidCustomerName
	}
	email = strings.TrimSpace(email)
	if email != "" && !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidCustomerEmail
	}
	return Customer{Name: name, Email: email, Phone: strings.TrimSpace(phone)}, nil
}

type Vehicle struct {
	Plate string
	Type  string
	Make  string
	Model string
	Color string
}

func NewVehicle(plate, vehicleType, vehicleMake, model, color string) (Vehicle, error) {
	plate = strings.ToUpper(strings.Join(strings.Fields(plate), " "))
	if plate == "" || len(plate) > maxPlateLength {
		return Vehicle{}, ErrInvalidPlate
	}
	vehicleType = strings.ToUpper(strings.TrimSpace(vehicleType))
	if vehicleType == "" {
		vehicleType = "CAR"
	}
	return Vehicle{
		Plate: plate,
		Type:  vehicleType,
		Make:  strings.TrimSpace(vehicleMake),
		Model: strings.TrimSpace(model),
		Color: strings.TrimSpace(color),
	}, nil
}

// Description is the human readable "make model (color)" used in emails.
func (v Vehicle) Description() string {
	desc := strings.TrimSpace(v.Make + " " + v.Model)
	if v.Color != "" {
		if desc == "" {
			return v.Color
		}
		desc = fmt.Sprintf("%s (%s)", desc, v.Color)
	}
	return desc
}

// Money is an amount in minor currency units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// Percent returns p percent of m, truncated to whole cents.
func (m Money) Percent(p int64) Money {
	return Money{cents: m.cents * p / 100}
}

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: s}, nil
}

func (n Notes) Value() string {
	return n.value
}
