package component

// Level — состояние текущего уровня (очередь спавна врагов).
type Level struct {
	Number        int
	PendingIDs    []string // Очередь ID врагов, еще не появившихся
	SpawnTimer    float64
	SpawnInterval float64
}
