package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	log "github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Employee
		wantErr bool
	}{
		{name: "numeric age", in: `{"id":1,"name":"Asha","contact":"99","location":"Madurai","gender":"Female","age":29}`,
			want: Employee{ID: 1, Name: "Asha", Contact: "99", Location: "Madurai", Gender: "Female", Age: 29}},
		{name: "string age", in: `{"id":2,"name":"Ravi","age":"41"}`, want: Employee{ID: 2, Name: "Ravi", Age: 41}},
		{name: "string age with spaces", in: `{"id":2,"age":" 41 "}`, want: Employee{ID: 2, Age: 41}},
		{name: "non-numeric string age", in: `{"id":3,"age":"old"}`, want: Employee{ID: 3}},
		{name: "null age", in: `{"id":4,"age":null}`, want: Employee{ID: 4}},
		{name: "missing age", in: `{"id":5,"name":"Nila"}`, want: Employee{ID: 5, Name: "Nila"}},
		{name: "fractional age", in: `{"id":6,"age":29.5}`, wantErr: true},
		{name: "bool age", in: `{"id":7,"age":true}`, wantErr: true},
		{name: "not an object", in: `[1,2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Employee
			err := json.Unmarshal([]byte(tt.in), &e)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e)
		})
	}
}

func TestEmployee_UnmarshalJSONWarnsOnBadAge(t *testing.T) {
	buf := bytes.Buffer{}
	log.Setup(log.Out(&buf), log.Err(&buf))
	defer log.Setup(log.Out(os.Stdout), log.Err(os.Stderr))

	var e Employee
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Ravi","age":"abc"}`), &e))
	assert.Equal(t, Employee{ID: 3, Name: "Ravi"}, e)
	assert.Contains(t, buf.String(), `[WARN] non-numeric age "abc" of employee 3`)

	buf.Reset()
	require.NoError(t, json.Unmarshal([]byte(`{"id":4,"age":"41"}`), &e))
	assert.Empty(t, buf.String(), "numeric string is not a warning")
}

func TestEmployee_MarshalJSON(t *testing.T) {
	e := Employee{ID: 1, Name: "Asha", Contact: "9998887776", Location: "Madurai", Gender: "Female", Age: 29}
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Asha","contact":"9998887776","location":"Madurai","gender":"Female","age":29}`, string(data))
}

func TestDraftOf(t *testing.T) {
	e := Employee{ID: 9, Name: "Asha", Contact: "9998887776", Location: "Madurai", Gender: "Female", Age: 29}
	d := DraftOf(e)
	assert.Equal(t, Draft{Name: "Asha", Contact: "9998887776", Location: "Madurai", Gender: "Female", Age: 29}, d)
	assert.Equal(t, e, d.employee(9))
}

func TestSearch(t *testing.T) {
	employees := []Employee{
		{ID: 1, Name: "Karthik Raja", Contact: "9876543210", Location: "Madurai", Gender: "Male"},
		{ID: 2, Name: "Priya", Contact: "9845012345", Location: "Sivakasi", Gender: "Female"},
		{ID: 3, Name: "Maria", Contact: "9000000000", Location: "Sattur", Gender: "Female"},
	}

	tests := []struct {
		term string
		ids  []int
	}{
		{term: "", ids: []int{1, 2, 3}},
		{term: "  ", ids: []int{1, 2, 3}},
		{term: "karthik", ids: []int{1}},
		{term: "MAD", ids: []int{1}},
		{term: "98", ids: []int{1, 2}},
		{term: "female", ids: []int{2, 3}},
		{term: "male", ids: []int{1}},
		{term: "ar", ids: []int{1, 3}},
		{term: "chennai", ids: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			res := Search(employees, tt.term)
			ids := make([]int, 0, len(res))
			for _, e := range res {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestLoadSeed(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		res, err := LoadSeed("")
		require.NoError(t, err)
		require.NotEmpty(t, res)
		for i, e := range res {
			assert.Equal(t, i+1, e.ID)
			assert.NotEmpty(t, e.Name)
			assert.Positive(t, e.Age)
		}
	})

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"name":"Asha","contact":"1","location":"Madurai","gender":"Female","age":"29"}]`), 0o600))
		res, err := LoadSeed(path)
		require.NoError(t, err)
		assert.Equal(t, []Employee{{ID: 1, Name: "Asha", Contact: "1", Location: "Madurai", Gender: "Female", Age: 29}}, res)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yml")
		data := "- id: 1\n  name: Asha\n  contact: \"9998887776\"\n  location: Madurai\n  gender: Female\n  age: 29\n" +
			"- id: 2\n  name: Ravi\n  contact: \"9000000000\"\n  location: Sattur\n  gender: Male\n  age: 41\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
		res, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, Employee{ID: 2, Name: "Ravi", Contact: "9000000000", Location: "Sattur", Gender: "Male", Age: 41}, res[1])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read seed file")
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("id: [1"), 0o600))
		_, err := LoadSeed(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse yaml seed")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)
	assert.Equal(t, "Employee", schema.Title)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	s := string(data)
	for _, field := range []string{`"name"`, `"contact"`, `"location"`, `"gender"`, `"age"`, `"Virudhunagar"`, `"Female"`} {
		assert.Contains(t, s, field)
	}
}
