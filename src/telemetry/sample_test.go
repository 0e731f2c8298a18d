package telemetry

import "testing"

func TestJointCatalog_StableAndDistinct(t *testing.T) {
	joints := Joints()
	if len(joints) != NumJoints {
		t.Fatalf("catalog has %d joints; want %d", len(joints), NumJoints)
	}
	seenName := map[string]bool{}
	for i, j := range joints {
		if j.Name == "" {
			t.Fatalf("joint %d has empty name", i)
		}
		if seenName[j.Name] {
			t.Fatalf("duplicate joint name %q", j.Name)
		}
		seenName[j.Name] = true
		if j.Color.A == 0 {
			t.Fatalf("joint %q has a transparent color", j.Name)
		}
	}
	// order is part of the payload contract
	if joints[0].Name != "left_hip_pitch" || joints[NumJoints-1].Name != "right_ankle_pitch" {
		t.Fatalf("catalog order changed: first=%q last=%q", joints[0].Name, joints[NumJoints-1].Name)
	}
}

func TestSample_TimeAccessors(t *testing.T) {
	var samples = []Sample{
		Frequency{T: 1.25, Hz: 50},
		JointState{T: 2.5},
		JointRate{T: 3.75},
	}
	want := []float64{1.25, 2.5, 3.75}
	for i, s := range samples {
		if s.Time() != want[i] {
			t.Fatalf("sample %d Time() = %v; want %v", i, s.Time(), want[i])
		}
	}
}
