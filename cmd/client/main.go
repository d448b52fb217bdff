package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	dto "gitlab.com/dirk.krummacker/persons-service/pkg/model"
)

// Usage example on the command line:
// > go run main.go -server=http://localhost:8080
func main() {
	server := flag.String("server", "http://localhost:8080", "the base URL of the persons service")
	flag.Parse()

	countryID := createCountry(*server)
	name, email := "Marcus Antonius", "marcus@example.com"
	gender := dto.GenderMale
	dateOfBirth := time.Date(1983, time.January, 14, 0, 0, 0, 0, time.UTC)
	request := dto.PersonAddRequest{
		Name:        &name,
		Email:       &email,
		DateOfBirth: &dateOfBirth,
		Gender:      &gender,
		CountryID:   &countryID,
	}
	jsonBody, err := json.Marshal(request)
	if err != nil {
		panic(err)
	}

	fmt.Println()
	fmt.Println("  Elements      POST       PUT       GET    DELETE ")
	fmt.Println("---------------------------------------------------")
	sizes := []int{1000, 5000, 10000, 50000, 100000}
	for _, loops := range sizes {
		fmt.Printf("%10d", loops)
		ids := make([]uuid.UUID, 0, loops)
		{
			// POST requests
			var duration int64
			for i := 0; i < loops; i++ {
				id, d := sendPostRequest(*server, bytes.NewReader(jsonBody))
				ids = append(ids, id)
				duration += d
			}
			fmt.Printf("%10d", duration/int64(loops*1000))
		}
		{
			// PUT requests
			f := func(id uuid.UUID) int64 {
				return sendPutGetDeleteRequest(*server, id, http.MethodPut, bytes.NewReader(jsonBody))
			}
			callInLoop(ids, f)
		}
		{
			// GET requests
			f := func(id uuid.UUID) int64 {
				return sendPutGetDeleteRequest(*server, id, http.MethodGet, nil)
			}
			callInLoop(ids, f)
		}
		{
			// DELETE requests
			f := func(id uuid.UUID) int64 {
				return sendPutGetDeleteRequest(*server, id, http.MethodDelete, nil)
			}
			callInLoop(ids, f)
		}
		fmt.Println()
	}
}

// callInLoop calls f for every id in random order and prints the mean duration in microseconds.
func callInLoop(ids []uuid.UUID, f func(id uuid.UUID) int64) {
	shuffled := make([]uuid.UUID, len(ids))
	copy(shuffled, ids)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	var duration int64
	for _, id := range shuffled {
		duration += f(id)
	}
	fmt.Printf("%10d", duration/int64(len(ids)*1000))
}

// createCountry adds a country with a unique name for the persons of this run.
func createCountry(server string) uuid.UUID {
	name := "Benchmark " + uuid.NewString()
	body, err := json.Marshal(dto.CountryAddRequest{CountryName: &name})
	if err != nil {
		panic(err)
	}
	resBody, _ := sendRequest(http.MethodPost, server+"/countries", bytes.NewReader(body))
	var country dto.CountryResponse
	if err := json.Unmarshal(resBody, &country); err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}
	return country.CountryID
}

func sendPostRequest(server string, bodyReader io.Reader) (uuid.UUID, int64) {
	resBody, duration := sendRequest(http.MethodPost, server+"/persons", bodyReader)
	var person dto.PersonResponse
	err := json.Unmarshal(resBody, &person)
	if err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}
	return person.PersonID, duration
}

func sendPutGetDeleteRequest(server string, id uuid.UUID, method string, bodyReader io.Reader) int64 {
	requestURL := fmt.Sprintf("%s/persons/%s", server, id)
	_, duration := sendRequest(method, requestURL, bodyReader)
	return duration
}

func sendRequest(method string, requestURL string, bodyReader io.Reader) ([]byte, int64) {
	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	before := time.Now().UnixNano()
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	after := time.Now().UnixNano()
	return resBody, after - before
}
