package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testTransformComponent struct {
	X, Y, Z float64
}

type testMaterialComponent struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if em.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testTransformComponent{X: 1, Y: 60, Z: -100})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransformComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testTransformComponent)
	if retrieved.Y != 60 || retrieved.Z != -100 {
		t.Errorf("Component data mismatch, got (%f, %f, %f)", retrieved.X, retrieved.Y, retrieved.Z)
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()

	// 未创建的实体添加组件应被忽略
	em.AddComponent(EntityID(42), &testTransformComponent{})
	AddComponent(em, EntityID(42), &testMaterialComponent{})

	if em.HasComponent(EntityID(42), reflect.TypeOf(&testTransformComponent{})) {
		t.Error("Unknown entity should not receive components")
	}
	if HasComponent[*testMaterialComponent](em, EntityID(42)) {
		t.Error("Unknown entity should not receive components (generic)")
	}
}

func TestGenericAndReflectAPIsAgree(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 泛型写入、反射读取
	AddComponent(em, id, &testMaterialComponent{Name: "black"})
	comp, found := em.GetComponent(id, reflect.TypeOf(&testMaterialComponent{}))
	if !found || comp.(*testMaterialComponent).Name != "black" {
		t.Fatal("reflect GetComponent should see component added through generic API")
	}

	// 反射写入、泛型读取
	em.AddComponent(id, &testTransformComponent{Y: 7})
	transform, ok := GetComponent[*testTransformComponent](em, id)
	if !ok || transform.Y != 7 {
		t.Fatal("generic GetComponent should see component added through reflect API")
	}
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()

	var want []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		if i%3 == 0 {
			continue
		}
		AddComponent(em, id, &testTransformComponent{X: float64(i)})
		AddComponent(em, id, &testMaterialComponent{})
		want = append(want, id)
	}

	got := GetEntitiesWith2[*testTransformComponent, *testMaterialComponent](em)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetEntitiesWith2 = %v, want %v", got, want)
	}

	// 查询只有 Transform 的实体
	if n := len(GetEntitiesWith1[*testTransformComponent](em)); n != len(want) {
		t.Errorf("GetEntitiesWith1 returned %d entities, want %d", n, len(want))
	}
}

func TestTraverseVisitsInCreationOrder(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 20; i++ {
		em.CreateEntity()
	}

	var visited []EntityID
	em.Traverse(func(id EntityID) {
		visited = append(visited, id)
	})

	if len(visited) != 20 {
		t.Fatalf("Traverse visited %d entities, want 20", len(visited))
	}
	for i, id := range visited {
		if id != EntityID(i+1) {
			t.Fatalf("visited[%d] = %d, want %d", i, id, i+1)
		}
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.AddComponent(id1, &testTransformComponent{})
	em.AddComponent(id2, &testTransformComponent{})

	// 标记删除
	em.DestroyEntity(id1)

	// 清理前实体仍存在
	if !em.HasComponent(id1, reflect.TypeOf(&testTransformComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.HasComponent(id1, reflect.TypeOf(&testTransformComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
	if !HasComponent[*testTransformComponent](em, id2) {
		t.Error("id2 should still exist")
	}
}
