package components

// MeshKind 可渲染对象的图元类型
type MeshKind int

const (
	// MeshKindMesh 三角形网格（参与泛光前的"压暗"处理）
	MeshKindMesh MeshKind = iota
	// MeshKindLine 线段（不是网格，压暗时跳过）
	MeshKindLine
)

// String 返回图元类型名称（用于日志）
func (k MeshKind) String() string {
	switch k {
	case MeshKindMesh:
		return "mesh"
	case MeshKindLine:
		return "line"
	default:
		return "unknown"
	}
}

// MeshComponent 存储实体的几何体引用
// 几何体可以被多个实体共享（如五个遮挡条共用同一个矩形）
type MeshComponent struct {
	Kind     MeshKind
	Geometry *Geometry
}
