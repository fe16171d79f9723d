package searcher

// Default ring weights, indexed by distance from the centre. Friendly
// marbles near the middle are worth more; enemy marbles count against.

var FriendWeights = []float64{40, 35, 30, 25, 20}
var EnemyWeights = []float64{-60, -50, -40, -30, -20}
