// Command genshots writes a synthetic shot dataset in the CSV format the
// dashboard loads: one row per shot attempt with match metadata, pitch
// position and outcome. Positions cluster near the opposing goal and each
// team converts at its own baseline rate.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type teamProfile struct {
	name       string
	players    []string
	efficiency float64
}

var teams = []teamProfile{
	{"Real Madrid", []string{"Vinicius Jr", "Jude Bellingham", "Rodrygo", "Kylian Mbappe", "Federico Valverde"}, 0.28},
	{"Manchester City", []string{"Erling Haaland", "Phil Foden", "Julian Alvarez", "Jack Grealish", "Kevin De Bruyne"}, 0.25},
	{"Bayern Munich", []string{"Harry Kane", "Jamal Musiala", "Leroy Sane", "Serge Gnabry", "Kingsley Coman"}, 0.24},
	{"Barcelona", []string{"Robert Lewandowski", "Ferran Torres", "Pedri", "Gavi", "Ousmane Dembele"}, 0.23},
	{"Arsenal", []string{"Bukayo Saka", "Gabriel Jesus", "Martin Odegaard", "Kai Havertz", "Leandro Trossard"}, 0.22},
	{"Liverpool", []string{"Mohamed Salah", "Luis Diaz", "Diogo Jota", "Cody Gakpo", "Darwin Nunez"}, 0.21},
	{"Inter Milan", []string{"Lautaro Martinez", "Marcus Thuram", "Nicolo Barella", "Hakan Calhanoglu", "Federico Dimarco"}, 0.20},
	{"AC Milan", []string{"Rafael Leao", "Christian Pulisic", "Olivier Giroud", "Alvaro Morata", "Fikayo Tomori"}, 0.19},
}

var situations = []string{"open_play", "corner", "free_kick", "counter_attack", "penalty"}
var shotTypes = []string{"left_foot", "right_foot", "header", "bicycle_kick"}

func main() {
	out := flag.String("out", "data/shots.csv", "output CSV path")
	matches := flag.Int("matches", 24, "number of matches to generate")
	season := flag.String("season", "2025-26", "season label")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	if *matches < 1 {
		fmt.Fprintln(os.Stderr, "matches must be >= 1")
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(*seed))
	rows := generate(rng, *matches, *season)

	if err := writeCSV(*out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d shots across %d matches to %s\n", len(rows), *matches, *out)
}

func generate(rng *rand.Rand, matches int, season string) [][]string {
	rows := make([][]string, 0, matches*40)
	matchDay := time.Date(2025, time.September, 16, 0, 0, 0, 0, time.UTC)

	for m := 0; m < matches; m++ {
		home := teams[rng.Intn(len(teams))]
		away := teams[rng.Intn(len(teams))]
		for away.name == home.name {
			away = teams[rng.Intn(len(teams))]
		}

		matchID := fmt.Sprintf("%s-%03d", season, m+1)
		date := matchDay.AddDate(0, 0, (m/4)*7).Format("2006-01-02")

		rows = append(rows, teamShots(rng, matchID, date, season, home, away.name)...)
		rows = append(rows, teamShots(rng, matchID, date, season, away, home.name)...)
	}

	return rows
}

func teamShots(rng *rand.Rand, matchID, date, season string, attacker teamProfile, opponent string) [][]string {
	count := 12 + rng.Intn(16)
	rows := make([][]string, 0, count)

	for i := 0; i < count; i++ {
		x := clamp(rng.NormFloat64()*10+85, 60, 100)
		y := clamp(rng.NormFloat64()*15+50, 5, 95)

		result := missResult(rng)
		if rng.Float64() < attacker.efficiency {
			result = "goal"
		}

		rows = append(rows, []string{
			matchID,
			date,
			season,
			attacker.name,
			opponent,
			attacker.players[rng.Intn(len(attacker.players))],
			strconv.Itoa(1 + rng.Intn(90)),
			strconv.FormatFloat(round1(x), 'f', 1, 64),
			strconv.FormatFloat(round1(y), 'f', 1, 64),
			result,
			situations[rng.Intn(len(situations))],
			shotTypes[rng.Intn(len(shotTypes))],
		})
	}

	return rows
}

func missResult(rng *rand.Rand) string {
	switch rng.Intn(3) {
	case 0:
		return "missed"
	case 1:
		return "saved"
	default:
		return "blocked"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func writeCSV(path string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{"match_id", "date", "season", "team", "opponent", "player", "minute", "x", "y", "result", "situation", "shot_type"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}
