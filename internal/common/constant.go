package common

// SeedUser is a fixed row inserted by the initialize-and-seed action.
type SeedUser struct {
	Name  string
	Email string
}

// SeedUsers is the reference data set written on every reset.
var SeedUsers = []SeedUser{
	{Name: "Anna Andersson", Email: "anna@test.se"},
	{Name: "Bo Bengtsson", Email: "bo@test.se"},
}
