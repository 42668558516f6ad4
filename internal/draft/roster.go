package draft

import "math/rand"

// Driver is a member of the in-house driver roster.
type Driver struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Experience string `json:"experience"`
	Rating     string `json:"rating"`
}

var roster = []Driver{
	{
		Name:       "Rajesh Kumar",
		Phone:      "+91 98765 43210",
		Address:    "123 MG Road, Bangalore",
		Experience: "8 years",
		Rating:     "4.8/5",
	},
	{
		Name:       "Amit Singh",
		Phone:      "+91 87654 32109",
		Address:    "45 Brigade Road, Bangalore",
		Experience: "5 years",
		Rating:     "4.7/5",
	},
	{
		Name:       "Mohammad Farhan",
		Phone:      "+91 76543 21098",
		Address:    "789 Church Street, Bangalore",
		Experience: "10 years",
		Rating:     "4.9/5",
	},
	{
		Name:       "Suresh Patel",
		Phone:      "+91 65432 10987",
		Address:    "234 Commercial Street, Bangalore",
		Experience: "6 years",
		Rating:     "4.6/5",
	},
}

// Roster returns a copy of the driver roster.
func Roster() []Driver {
	out := make([]Driver, len(roster))
	copy(out, roster)
	return out
}

// PickDriver selects one roster driver uniformly at random.
func PickDriver() Driver {
	return roster[rand.Intn(len(roster))]
}
