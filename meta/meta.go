// meta/meta.go
package meta

// SEED seeds every random number generator unless configured otherwise.
const SEED = 42

// BOARDS selects the perf board set, "random" or "full".
const BOARDS = "random"

// BOARD_COUNT defines the number of random boards per perf run.
const BOARD_COUNT = 10000

// REPEATS defines how many times each perf phase is timed.
const REPEATS = 3

// GAMES defines the number of games per match up.
const GAMES = 20

// OUTPUT_DIR is where experiment results are written.
const OUTPUT_DIR = "results"
