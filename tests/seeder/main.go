package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
)

const baseURL = "http://localhost:8080"

type item struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type discount struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	PercentOff string `json:"percent_off"`
}

type tax struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Percentage string `json:"percentage"`
}

type order struct {
	ItemIDs    []string `json:"item_ids"`
	DiscountID *string  `json:"discount_id,omitempty"`
	TaxID      *string  `json:"tax_id,omitempty"`
}

func post(path string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("POST %s -> %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func main() {
	names := []string{"Coffee", "Bagel", "Sandwich", "Juice", "Cookie", "Salad", "Soup", "Tea"}

	var itemIDs []string
	for _, name := range names {
		it := item{
			Name:     name,
			Price:    fmt.Sprintf("%d.%02d", rand.Intn(20)+1, rand.Intn(100)),
			Currency: "usd",
		}
		var created item
		if err := post("/admin/items", it, &created); err != nil {
			log.Fatal(err)
		}
		log.Println("item created", created.ID, created.Name)
		itemIDs = append(itemIDs, created.ID)
	}

	var d discount
	if err := post("/admin/discounts", discount{Name: "SAVE10", PercentOff: "10"}, &d); err != nil {
		log.Fatal(err)
	}
	log.Println("discount created", d.ID)

	var t tax
	if err := post("/admin/taxes", tax{Name: "VAT", Percentage: "20"}, &t); err != nil {
		log.Fatal(err)
	}
	log.Println("tax created", t.ID)

	for i := 0; i < 5; i++ {
		n := rand.Intn(3) + 1
		ids := make([]string, 0, n)
		for j := 0; j < n; j++ {
			ids = append(ids, itemIDs[rand.Intn(len(itemIDs))])
		}

		o := order{ItemIDs: ids}
		if rand.Intn(2) == 0 {
			o.DiscountID = &d.ID
		}
		if rand.Intn(2) == 0 {
			o.TaxID = &t.ID
		}

		var created map[string]any
		if err := post("/admin/orders", o, &created); err != nil {
			log.Fatal(err)
		}
		log.Println("order created", created["id"], "total", created["total_price"])
	}
}
