// meta/meta.go
package meta

// DEPTH defines the default search depth of the AutoPlayer, in plies.
const DEPTH = 3

// PRUNING enables alpha-beta pruning by default.
const PRUNING = true

// MAX_MOVES caps the number of moves played in one local game.
const MAX_MOVES = 400

// GAMES defines the number of games per match up in an experiment.
const GAMES = 10

// PARALLELISM defines how many experiment games run at once.
const PARALLELISM = 4

// SEED seeds random players when none is configured.
const SEED = 1
