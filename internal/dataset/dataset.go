// Copyright 2026 The tabtour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides the sample tables the lessons run against.
//
// All datasets are compiled into the binary and loaded into go-gg
// tables on demand. Each loader returns a fresh table; lessons treat
// the data as read-only and derive new tables from it.
package dataset

import (
	_ "embed"
	"encoding/csv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/tidwall/gjson"
)

//go:embed fueleconomy.csv
var fuelEconomyCSV string

//go:embed flights.csv
var flightsCSV string

//go:embed weather.json
var weatherJSON string

func fromCSV(data string) *table.Table {
	rows, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	if err != nil {
		panic("dataset: bad embedded CSV: " + err.Error())
	}
	return table.TableFromStrings(rows[0], rows[1:], true)
}

// FuelEconomy returns fuel economy records for 56 car models. Its
// columns are:
//
//	manufacturer  manufacturer name
//	model         model name
//	displ         engine displacement in litres
//	year          year of manufacture
//	cyl           number of cylinders
//	trans         transmission type ("auto" or "manual")
//	drv           drive train ("f", "r", or "4")
//	cty           city fuel economy in miles per gallon
//	hwy           highway fuel economy in miles per gallon
//	fl            fuel type
//	class         vehicle class
func FuelEconomy() *table.Table {
	return fromCSV(fuelEconomyCSV)
}

// Flights returns 36 departures from the three New York City airports
// over three days in January 2013. Its columns are:
//
//	year, month, day   date of departure
//	carrier            two-letter carrier code (see Airlines)
//	flight             flight number
//	origin, dest       origin and destination airport codes
//	dep delay          departure delay in minutes (negative is early)
//	arr delay          arrival delay in minutes
//	distance           distance flown in miles
//	air time           time spent in the air in minutes
func Flights() *table.Table {
	return fromCSV(flightsCSV)
}

// Weather returns monthly climate normals for three Bulgarian cities,
// decoded from an embedded JSON array. Its columns are:
//
//	city    city name
//	month   month number, 1 through 12
//	temp    mean temperature in degrees Celsius
//	precip  precipitation in millimetres
func Weather() *table.Table {
	var (
		cities  []string
		months  []int
		temps   []float64
		precips []int
	)
	gjson.Parse(weatherJSON).ForEach(func(_, obs gjson.Result) bool {
		cities = append(cities, obs.Get("city").String())
		months = append(months, int(obs.Get("month").Int()))
		temps = append(temps, obs.Get("temp").Float())
		precips = append(precips, int(obs.Get("precip").Int()))
		return true
	})
	return new(table.Builder).
		Add("city", cities).
		Add("month", months).
		Add("temp", temps).
		Add("precip", precips).
		Done()
}

// Airlines maps the carrier codes used by Flights to airline names.
func Airlines() *table.Table {
	return new(table.Builder).
		Add("carrier", []string{"AA", "B6", "DL", "UA"}).
		Add("name", []string{
			"American Airlines",
			"JetBlue Airways",
			"Delta Air Lines",
			"United Air Lines",
		}).
		Done()
}
