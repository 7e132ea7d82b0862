package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"makruk-engine/makruk"
)

// makruk-debug plays a move sequence onto a position and dumps the
// resulting board state, keys and draw information. It doubles as a
// micro benchmark for the do/undo path.

func main() {
	fen := flag.String("fen", makruk.StartFEN, "FEN string (defaults to initial position)")
	moves := flag.String("moves", "", "Moves in coordinate notation, e.g. \"e3e4 e6e5 d5d6m\"")
	bench := flag.Int("bench", 0, "Run N do/undo rounds over the move sequence and report timings")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	verbose := flag.Bool("verbose", false, "Log every move as it is applied")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	pos, err := makruk.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("parse fen")
	}

	var seq []makruk.Move
	for _, s := range strings.Fields(strings.ReplaceAll(*moves, ",", " ")) {
		m, err := parseMove(s)
		if err != nil {
			log.Fatal().Err(err).Str("move", s).Msg("parse move")
		}
		if !pos.PseudoLegal(m) || !pos.Legal(m) {
			log.Fatal().Str("move", s).Str("fen", pos.FEN()).Msg("illegal move")
		}
		check := pos.GivesCheck(m)
		pos.DoMove(m, check)
		seq = append(seq, m)
		if *verbose {
			log.Debug().Str("move", s).Bool("check", check).
				Str("key", fmt.Sprintf("%016x", pos.Key())).Msg("applied")
		}
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatal().Err(err).Msg("creating cpuprofile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if *bench > 0 {
		runBench(log, pos, seq, *bench)
		return
	}

	fmt.Print(pos)
	fmt.Printf("Pawn key:     %016x\n", pos.PawnKey())
	fmt.Printf("Material key: %016x\n", pos.MaterialKey())
	fmt.Printf("Clock: %d  In check: %v\n", pos.Rule50(), pos.InCheck())
	fmt.Printf("Draw: %v  Repeated: %v  Cycle: %v\n",
		pos.IsDraw(len(seq)), pos.HasRepeated(), pos.HasGameCycle(len(seq)))
}

// runBench unwinds and replays the move sequence n times and reports
// per-round timings.
func runBench(log zerolog.Logger, pos *makruk.Position, seq []makruk.Move, n int) {
	if len(seq) == 0 {
		log.Fatal().Msg("-bench needs a -moves sequence")
	}

	checks := make([]bool, len(seq))
	rounds := make([]time.Duration, 0, n)
	start := time.Now()
	for i := 0; i < n; i++ {
		t0 := time.Now()
		for j := len(seq) - 1; j >= 0; j-- {
			pos.UndoMove(seq[j])
		}
		for j, m := range seq {
			checks[j] = pos.GivesCheck(m)
			pos.DoMove(m, checks[j])
		}
		rounds = append(rounds, time.Since(t0))
	}
	elapsed := time.Since(start)

	slices.Sort(rounds)
	movesDone := 2 * n * len(seq)
	log.Info().
		Int("rounds", n).
		Dur("total", elapsed).
		Dur("min", rounds[0]).
		Dur("median", rounds[len(rounds)/2]).
		Dur("max", rounds[len(rounds)-1]).
		Float64("moves_per_sec", float64(movesDone)/elapsed.Seconds()).
		Msg("do/undo benchmark")
}

func parseMove(s string) (makruk.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return makruk.MoveNone, fmt.Errorf("bad move %q", s)
	}
	for _, i := range []int{0, 2} {
		if s[i] < 'a' || s[i] > 'h' || s[i+1] < '1' || s[i+1] > '8' {
			return makruk.MoveNone, fmt.Errorf("bad square in %q", s)
		}
	}
	from := makruk.MakeSquare(int(s[0]-'a'), int(s[1]-'1'))
	to := makruk.MakeSquare(int(s[2]-'a'), int(s[3]-'1'))
	if len(s) == 5 {
		if s[4] != 'm' {
			return makruk.MoveNone, fmt.Errorf("bad promotion suffix in %q", s)
		}
		return makruk.NewPromotionMove(from, to), nil
	}
	return makruk.NewMove(from, to), nil
}
