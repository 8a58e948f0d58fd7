package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:8080/items/"
	fixedID = "00000000-0000-0000-0000-000000000000"
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID() string {
	chars := []rune("0123456789abcdef")
	id := make([]rune, 36)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	id[8], id[13], id[18], id[23] = '-', '-', '-', '-'
	return string(id)
}

func doRequest() {
	id := fixedID
	if rand.Intn(5) == 0 {
		id = randomID()
	}

	url := baseURL + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
