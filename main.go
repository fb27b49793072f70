package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
	"connectfour/tournament"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Position file: strategy name, player to move, 6 board rows")
	mode := flag.String("mode", "None", "Report mode: Verbose, Brief or None")
	param := flag.Int("param", 0, "Strategy parameter: simulation count (0 for UR)")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	runTournament := flag.Bool("tournament", false, "Run the round-robin tournament instead of deciding one move")
	games := flag.Int("games", 100, "Tournament games per pairing")
	out := flag.String("out", "results", "Tournament results directory")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *runTournament {
		if err := playTournament(*games, *seed, *out); err != nil {
			log.Fatal().Err(err).Msg("tournament failed")
		}
		return
	}

	if err := decideMove(*file, *mode, *param, *seed); err != nil {
		log.Fatal().Err(err).Msg("move decision failed")
	}
}

// decideMove loads a position, runs its strategy once and reports the chosen
// move on stdout according to the report mode.
func decideMove(file, mode string, param int, seed uint64) error {
	if file == "" {
		return fmt.Errorf("missing -file: a position file is required")
	}
	pos, err := game.LoadFile(file)
	if err != nil {
		return err
	}
	strategy, err := searcher.ParseStrategy(pos.Strategy)
	if err != nil {
		return err
	}

	var observer searcher.Observer
	switch mode {
	case "Verbose":
		observer = &reporter{out: os.Stdout, trace: true, columns: true}
	case "Brief":
		observer = &reporter{out: os.Stdout, columns: true}
	case "None":
		observer = &reporter{out: os.Stdout}
	default:
		return fmt.Errorf("invalid mode %q: must be Verbose, Brief or None", mode)
	}

	m, err := searcher.New(strategy,
		searcher.WithSimulations(param),
		searcher.WithSeed(seed),
		searcher.WithObserver(observer),
	)
	if err != nil {
		return err
	}

	fmt.Println(renderBoard(pos.Board))
	_, err = m.FindMove(pos.Board, pos.Player)
	return err
}

// playTournament runs the round robin, writes the CSV exports and prints the
// standings.
func playTournament(games int, seed uint64, out string) error {
	tour, err := tournament.New(tournament.DefaultLineup(),
		tournament.WithGames(games),
		tournament.WithSeed(seed),
	)
	if err != nil {
		return err
	}

	matchups, records, err := tour.Run()
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(out)
	if err != nil {
		return err
	}
	if err := writer.WriteMatchupRecords(matchups); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("results written")

	printStandings(os.Stdout, matchups)
	return nil
}

func printStandings(w io.Writer, matchups []metrics.MatchupRecord) {
	fmt.Fprintln(w, "Standings:")
	for _, m := range matchups {
		fmt.Fprintf(w, "  %s vs %s: %d-%d, %d draws\n",
			m.Agent1, m.Agent2, m.Wins1, m.Wins2, m.Draws)
	}
}
