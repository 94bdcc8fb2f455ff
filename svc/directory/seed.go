package directory

import "time"

// SampleTherapists returns a small data set with a mix of clean and broken
// fields. Used by the in-memory development mode.
func SampleTherapists() []Therapist {
	base := time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)
	rec := func(i int, id, first, last, street, zip, city, canton, email, phone string, verified bool) Therapist {
		t := Therapist{
			ID:              id,
			FirstName:       first,
			LastName:        last,
			ContactVerified: verified,
			CreatedAt:       base.Add(time.Duration(i) * time.Hour),
			UpdatedAt:       base.Add(time.Duration(i) * time.Hour),
		}
		for f, v := range map[Field]string{
			FieldStreet: street, FieldZip: zip, FieldCity: city,
			FieldCanton: canton, FieldEmail: email, FieldPhone: phone,
		} {
			if v != "" {
				f.Set(&t, v)
			}
		}
		return t
	}

	return []Therapist{
		rec(0, "cmjd100001a", "Anna", "Meier", "Bahnhofstrasse 1", "8001", "Zürich", "ZH", "anna.meier@example.ch", "+41 44 123 45 67", true),
		rec(1, "cmjd100002b", "Luca", "Rossi", "Via Nassa 5", "6900", "Lugano", "TI", "", "091 922 11 22", false),
		rec(2, "cmjd100003c", "Claire", "Dubois", "Rue du Rhône 12", "120", "Genève", "GE", "claire.dubois@", "", false),
		rec(3, "cmjd100004d", "Jonas", "Keller", "Marktgasse 3", "", "Bern", "be", "jonas@keller.ch", "031 311", true),
		rec(4, "cmjd100005e", "Sara", "Brunner", "Kapellgasse 9", "6004", "Luzern", "Unknown(27)", "sara.brunner@example.ch", "041 410 20 30", false),
		rec(5, "cmjd100006f", "Marc", "Favre", "Avenue de la Gare 2", "1003 ", "Lausanne", "", "", "", false),
	}
}
