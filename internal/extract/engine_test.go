package extract_test

import (
	"github.com/myrjola/smartcop/internal/extract"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEngine_ExtractField(t *testing.T) {
	t.Parallel()
	engine := extract.New(fields.Default())

	tests := []struct {
		name    string
		key     fields.Key
		raw     string
		want    string
		wantErr error
	}{
		{name: "hindi name drops copula", key: fields.FullName, raw: "मेरा नाम राम है", want: "राम"},
		{name: "english name is title-cased", key: fields.FullName, raw: "my name is ram KUMAR", want: "Ram Kumar"},
		{name: "name starting with is", key: fields.FullName, raw: "my name ishaan", want: "Ishaan"},
		{name: "self introduction without trigger", key: fields.FullName, raw: "I am sita devi", want: "Sita Devi"},
		{name: "bare name", key: fields.FullName, raw: "arjun singh hai", want: "Arjun Singh"},
		{name: "age stated with years old wins", key: fields.Age, raw: "I am 25 years old, my brother is 30",
			want: "25"},
		{name: "age is beats bare years", key: fields.Age, raw: "my age is 42 and I lived here 10 years",
			want: "42"},
		{name: "years beats bare number", key: fields.Age, raw: "house 7, 35 years", want: "35"},
		{name: "bare number", key: fields.Age, raw: "45", want: "45"},
		{name: "hindi age", key: fields.Age, raw: "मैं 30 साल का हूं", want: "30"},
		{name: "age without digits is kept", key: fields.Age, raw: "forty", want: "forty"},
		{name: "address with trigger", key: fields.Address, raw: "my address is 12 MG Road, Pune",
			want: "12 MG Road"},
		{name: "address fallback strips possessive", key: fields.Address, raw: "my house number 5 Civil Lines",
			want: "house number 5 Civil Lines"},
		{name: "date of birth", key: fields.DateOfBirth, raw: "I was born on 12-05-1990", want: "12-05-1990"},
		{name: "iso date of birth", key: fields.DateOfBirth, raw: "date of birth is 1990/05/12",
			want: "1990/05/12"},
		{name: "date outside the capture", key: fields.DateOfBirth, raw: "born on 12-05-1990, birth place Pune",
			want: "12-05-1990"},
		{name: "incident date outside the capture", key: fields.DateTimeOfIncident,
			raw: "on 03/02/2024 at 9:15 am, the date of the theft", want: "03/02/2024 9:15 am"},
		{name: "date without digits is kept", key: fields.DateOfBirth, raw: "fifth of may", want: "fifth of may"},
		{name: "incident date keeps trailing time", key: fields.DateTimeOfIncident,
			raw: "it happened on 03/02/2024 at 10:30 pm", want: "03/02/2024 10:30 pm"},
		{name: "incident date without time", key: fields.DateTimeOfIncident, raw: "03/02/2024 near the market",
			want: "03/02/2024"},
		{name: "no witnesses", key: fields.Witnesses, raw: "No", want: "No witnesses"},
		{name: "hindi no witnesses", key: fields.Witnesses, raw: "नहीं", want: "No witnesses"},
		{name: "there were no witnesses", key: fields.Witnesses, raw: "there were no witnesses.",
			want: "No witnesses"},
		{name: "witness names", key: fields.Witnesses, raw: "witnesses were Ram and Shyam",
			want: "Ram and Shyam"},
		{name: "affirmative prefix dropped", key: fields.Witnesses, raw: "yes, Ram and Shyam", want: "Ram and Shyam"},
		{name: "free text is verbatim", key: fields.IncidentDescription,
			raw: "  Two men snatched my bag.\nThey fled on a bike.  ",
			want: "Two men snatched my bag.\nThey fled on a bike."},
		{name: "empty input means no update", key: fields.FullName, raw: "   ", want: ""},
		{name: "only fillers", key: fields.Address, raw: "my the", wantErr: extract.ErrNoMatch},
		{name: "unknown field", key: fields.Key("shoeSize"), raw: "42", wantErr: fields.ErrUnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := engine.ExtractField(tt.raw, tt.key)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_ExtractField_isPure(t *testing.T) {
	engine := extract.New(fields.Default())
	first, err := engine.ExtractField("my name is ram", fields.FullName)
	require.NoError(t, err)
	second, err := engine.ExtractField("my name is ram", fields.FullName)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEngine_ExtractAll(t *testing.T) {
	t.Parallel()
	engine := extract.New(fields.Default())

	tests := []struct {
		name string
		raw  string
		want map[fields.Key]string
	}{
		{
			name: "name and age",
			raw:  "My name is ram kumar, age 45",
			want: map[fields.Key]string{fields.FullName: "Ram Kumar", fields.Age: "45"},
		},
		{
			name: "hindi statement",
			raw:  "मेरा नाम राम है, उम्र 30, पता 12 गांधी नगर",
			want: map[fields.Key]string{fields.FullName: "राम", fields.Age: "30", fields.Address: "12 गांधी नगर"},
		},
		{
			name: "nothing extractable",
			raw:  "please help me",
			want: map[fields.Key]string{},
		},
		{
			name: "blank",
			raw:  "",
			want: map[fields.Key]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := engine.ExtractAll(tt.raw)
			require.Equal(t, tt.want, got.Fields)
			require.Equal(t, len(tt.want), got.Count)
		})
	}
}
